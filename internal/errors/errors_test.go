package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSitegenError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SitegenError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryBusiness, SeverityFatal, "failed to load business file"),
			expected: "business (fatal): failed to load business file: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestSitegenError_WithContext(t *testing.T) {
	err := New(CategoryTemplate, SeverityError, "render failed").
		WithContext("template", "seo.mdc.template").
		WithContext("line", 3)

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["template"] != "seo.mdc.template" {
		t.Errorf("Context[template] = %v, want seo.mdc.template", err.Context["template"])
	}
	if err.Context["line"] != 3 {
		t.Errorf("Context[line] = %v, want 3", err.Context["line"])
	}
}

func TestIsCategory(t *testing.T) {
	businessErr := BusinessFileNotFound("business.yaml")
	emitterErr := EmitterFailed("faq", fmt.Errorf("boom"))
	wrapped := fmt.Errorf("outer: %w", emitterErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"business error matches business category", businessErr, CategoryBusiness, true},
		{"business error doesn't match emitter category", businessErr, CategoryEmitter, false},
		{"wrapped emitter error matches emitter category", wrapped, CategoryEmitter, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory(plain) = %v, want %v", got, CategoryInternal)
	}
	if got := GetCategory(TemplateFailed("a.template", nil)); got != CategoryTemplate {
		t.Errorf("GetCategory(template) = %v, want %v", got, CategoryTemplate)
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("BusinessParseFailed", func(t *testing.T) {
		cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
		err := BusinessParseFailed("/site/business.yaml", cause)
		if err.Category != CategoryBusiness {
			t.Errorf("Category = %v, want %v", err.Category, CategoryBusiness)
		}
		if !err.IsFatal() {
			t.Error("BusinessParseFailed should be fatal")
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
		if err.Context["path"] != "/site/business.yaml" {
			t.Errorf("Context[path] = %v, want /site/business.yaml", err.Context["path"])
		}
	})

	t.Run("EmitterFailed", func(t *testing.T) {
		err := EmitterFailed("portfolio", fmt.Errorf("disk full"))
		if err.IsFatal() {
			t.Error("EmitterFailed must not be fatal")
		}
		if err.Context["emitter"] != "portfolio" {
			t.Errorf("Context[emitter] = %v, want portfolio", err.Context["emitter"])
		}
	})

	t.Run("InvalidJSONOutput", func(t *testing.T) {
		err := InvalidJSONOutput("public/schema.json", fmt.Errorf("unexpected end of JSON input"))
		if err.Severity != SeverityWarning {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityWarning)
		}
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{fmt.Errorf("plain"), 1},
		{BusinessFileNotFound("business.yaml"), 3},
		{ConfigInvalid("paths.business_file", "empty"), 7},
		{EmitterFailed("faq", nil), 11},
		{InternalError("boom", nil), 10},
	}
	for _, test := range tests {
		if got := a.ExitCodeFor(test.err); got != test.code {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", test.err, got, test.code)
		}
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	var code int
	a := NewCLIErrorAdapter(false, nil)
	a.out = &out
	a.exit = func(c int) { code = c }

	a.HandleError(BusinessFileNotFound("/site/business.yaml"))

	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if !strings.Contains(out.String(), "business file not found: /site/business.yaml") {
		t.Errorf("unexpected message %q", out.String())
	}
}
