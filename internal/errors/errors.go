// Package errors provides a lightweight structured error type (SitegenError)
// for category-based classification of generation failures and CLI exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a sitegen error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryBusiness   ErrorCategory = "business"
	CategoryValidation ErrorCategory = "validation"

	// Generation errors
	CategoryTemplate   ErrorCategory = "template"
	CategoryEmitter    ErrorCategory = "emitter"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but the batch continues
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// SitegenError is a structured error with category, severity, and context
type SitegenError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SitegenError
type ContextFields map[string]any

// Error implements the error interface
func (e *SitegenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SitegenError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SitegenError) WithContext(key string, value any) *SitegenError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// IsFatal reports whether the error should halt the run.
func (e *SitegenError) IsFatal() bool {
	return e.Severity == SeverityFatal
}

// New creates a new SitegenError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SitegenError {
	return &SitegenError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SitegenError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SitegenError {
	return &SitegenError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As returns the first SitegenError in err's chain.
func As(err error) (*SitegenError, bool) {
	var se *SitegenError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := As(err); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a SitegenError
func GetCategory(err error) ErrorCategory {
	if se, ok := As(err); ok {
		return se.Category
	}
	return CategoryInternal
}
