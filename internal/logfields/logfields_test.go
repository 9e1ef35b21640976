package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "123", RunID("123")},
		{"Template", KeyTemplate, "seo.mdc.template", Template("seo.mdc.template")},
		{"Output", KeyOutput, "public/schema.json", Output("public/schema.json")},
		{"Placeholder", KeyPlaceholder, "CONTACT.PHONE", Placeholder("CONTACT.PHONE")},
		{"Emitter", KeyEmitter, "faq", Emitter("faq")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Status", KeyStatus, "unchanged", Status("unchanged")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Count(5); v.Key != KeyCount || v.Value.Int64() != 5 {
		t.Fatalf("Count mismatch: %v", v)
	}
	if v := DurationMS(1.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

func TestErrorHelper(t *testing.T) {
	if v := Error(nil); v.Value.String() != "" {
		t.Fatalf("nil error should log empty string, got %q", v.Value.String())
	}
	if v := Error(errors.New("boom")); v.Key != KeyError || v.Value.String() != "boom" {
		t.Fatalf("unexpected error attr %v", v)
	}
}
