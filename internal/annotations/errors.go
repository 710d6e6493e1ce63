package annotations

import (
	"fmt"
	"strings"
)

// AnnotationError defines the interface for annotation-related errors
type AnnotationError interface {
	error
	Location() SourceLocation
	Suggestion() string
	Code() ErrorCode
}

// ErrorCode represents different types of annotation errors
type ErrorCode int

const (
	SyntaxErrorCode ErrorCode = iota
	ValidationErrorCode
	SchemaErrorCode
	RegistrationErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case ValidationErrorCode:
		return "ValidationError"
	case SchemaErrorCode:
		return "SchemaError"
	case RegistrationErrorCode:
		return "RegistrationError"
	default:
		return "UnknownError"
	}
}

// ValidationError represents a parameter validation error
type ValidationError struct {
	Parameter string         // Parameter name that failed validation
	Expected  string         // What was expected
	Actual    string         // What was provided
	Loc       SourceLocation // Where the error occurred
	Hint      string         // Suggested fix
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:%d:%d: parameter '%s' validation failed: expected %s, got %s. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column,
		e.Parameter, e.Expected, e.Actual, e.Hint)
}

func (e *ValidationError) Location() SourceLocation { return e.Loc }
func (e *ValidationError) Suggestion() string       { return e.Hint }
func (e *ValidationError) Code() ErrorCode          { return ValidationErrorCode }

// SyntaxError represents a syntax parsing error
type SyntaxError struct {
	Msg  string         // Error message
	Loc  SourceLocation // Where the error occurred
	Hint string         // Suggested fix
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg, e.Hint)
}

func (e *SyntaxError) Location() SourceLocation { return e.Loc }
func (e *SyntaxError) Suggestion() string       { return e.Hint }
func (e *SyntaxError) Code() ErrorCode          { return SyntaxErrorCode }

// SchemaError represents a schema-related error
type SchemaError struct {
	Msg  string         // Error message
	Loc  SourceLocation // Where the error occurred
	Hint string         // Suggested fix
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s:%d:%d: schema error: %s. %s",
		e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg, e.Hint)
}

func (e *SchemaError) Location() SourceLocation { return e.Loc }
func (e *SchemaError) Suggestion() string       { return e.Hint }
func (e *SchemaError) Code() ErrorCode          { return SchemaErrorCode }

// RegistrationError represents an error during annotation type registration
type RegistrationError struct {
	Msg  string         // Error message
	Loc  SourceLocation // Where the error occurred (optional)
	Hint string         // Suggested fix
}

func (e *RegistrationError) Error() string {
	if e.Loc.File != "" {
		return fmt.Sprintf("%s:%d:%d: registration error: %s. %s",
			e.Loc.File, e.Loc.Line, e.Loc.Column, e.Msg, e.Hint)
	}
	return fmt.Sprintf("registration error: %s. %s", e.Msg, e.Hint)
}

func (e *RegistrationError) Location() SourceLocation { return e.Loc }
func (e *RegistrationError) Suggestion() string       { return e.Hint }
func (e *RegistrationError) Code() ErrorCode          { return RegistrationErrorCode }

// MultipleAnnotationErrors represents multiple annotation errors collected together
type MultipleAnnotationErrors struct {
	Errors []AnnotationError
}

func (e *MultipleAnnotationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var messages []string
	for i, err := range e.Errors {
		messages = append(messages, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}

	return fmt.Sprintf("multiple annotation errors (%d total):\n%s", len(e.Errors), strings.Join(messages, "\n"))
}

// Unwrap returns the underlying errors for error inspection
func (e *MultipleAnnotationErrors) Unwrap() []error {
	errors := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errors[i] = err
	}
	return errors
}

// GetByType returns all errors of a specific type
func (e *MultipleAnnotationErrors) GetByType(code ErrorCode) []AnnotationError {
	var result []AnnotationError
	for _, err := range e.Errors {
		if err.Code() == code {
			result = append(result, err)
		}
	}
	return result
}

// HasType returns true if any error of the specified type exists
func (e *MultipleAnnotationErrors) HasType(code ErrorCode) bool {
	for _, err := range e.Errors {
		if err.Code() == code {
			return true
		}
	}
	return false
}

// Context-aware error message generators with fix suggestions

// NewSyntaxErrorWithContext creates a syntax error with context-aware suggestions
func NewSyntaxErrorWithContext(msg string, loc SourceLocation) *SyntaxError {
	return &SyntaxError{
		Msg:  msg,
		Loc:  loc,
		Hint: generateSyntaxSuggestion(msg),
	}
}

// generateSyntaxSuggestion provides context-aware suggestions for syntax errors
func generateSyntaxSuggestion(msg string) string {
	msg = strings.ToLower(msg)

	switch {
	case strings.Contains(msg, "missing annotation type"), strings.Contains(msg, "empty annotation"):
		return "Try: //flagen::marker or //flagen::exclude"
	case strings.Contains(msg, "prefix"):
		return "Annotation must start with '//flagen::' (note the double colon)"
	case strings.Contains(msg, "unterminated"):
		return "Make sure quoted strings are properly closed with matching quotes"
	case strings.Contains(msg, "parameter"):
		return "Parameters should be in format '-ParamName=Value'"
	default:
		return "Use format: //flagen::marker [-Name=EnumName] or //flagen::exclude"
	}
}

// generateUnknownParameterSuggestion names the parameters a directive accepts
func generateUnknownParameterSuggestion(paramName string, annotationType AnnotationType) string {
	switch annotationType {
	case MarkerAnnotation:
		return fmt.Sprintf("Remove -%s; marker annotations support only the Name parameter", paramName)
	case ExcludeAnnotation:
		return fmt.Sprintf("Remove -%s; exclude annotations take no parameters", paramName)
	default:
		return fmt.Sprintf("Remove -%s or check parameter name spelling", paramName)
	}
}

// ErrorSummary provides a summary of errors by type for better reporting
type ErrorSummary struct {
	SyntaxErrors     []AnnotationError
	ValidationErrors []AnnotationError
	SchemaErrors     []AnnotationError
	OtherErrors      []AnnotationError
	TotalCount       int
}

// SummarizeErrors creates an error summary from a collection of errors
func SummarizeErrors(errors []AnnotationError) ErrorSummary {
	summary := ErrorSummary{
		TotalCount: len(errors),
	}

	for _, err := range errors {
		switch err.Code() {
		case SyntaxErrorCode:
			summary.SyntaxErrors = append(summary.SyntaxErrors, err)
		case ValidationErrorCode:
			summary.ValidationErrors = append(summary.ValidationErrors, err)
		case SchemaErrorCode:
			summary.SchemaErrors = append(summary.SchemaErrors, err)
		default:
			summary.OtherErrors = append(summary.OtherErrors, err)
		}
	}

	return summary
}

// String returns a formatted summary of errors
func (s ErrorSummary) String() string {
	if s.TotalCount == 0 {
		return "No errors found"
	}

	var parts []string
	if len(s.SyntaxErrors) > 0 {
		parts = append(parts, fmt.Sprintf("%d syntax error(s)", len(s.SyntaxErrors)))
	}
	if len(s.ValidationErrors) > 0 {
		parts = append(parts, fmt.Sprintf("%d validation error(s)", len(s.ValidationErrors)))
	}
	if len(s.SchemaErrors) > 0 {
		parts = append(parts, fmt.Sprintf("%d schema error(s)", len(s.SchemaErrors)))
	}
	if len(s.OtherErrors) > 0 {
		parts = append(parts, fmt.Sprintf("%d other error(s)", len(s.OtherErrors)))
	}

	return fmt.Sprintf("Found %d total error(s): %s", s.TotalCount, strings.Join(parts, ", "))
}
