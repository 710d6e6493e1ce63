package annotations

import (
	"strings"
	"testing"
)

func TestErrorMessagesCarryLocation(t *testing.T) {
	loc := SourceLocation{File: "shapes.go", Line: 12, Column: 3}

	syntaxErr := &SyntaxError{Msg: "bad prefix", Loc: loc, Hint: "fix it"}
	if !strings.Contains(syntaxErr.Error(), "shapes.go:12:3") {
		t.Errorf("syntax error should carry location: %s", syntaxErr.Error())
	}
	if syntaxErr.Code() != SyntaxErrorCode {
		t.Errorf("unexpected code: %v", syntaxErr.Code())
	}

	validationErr := &ValidationError{
		Parameter: "Name",
		Expected:  "string",
		Actual:    "bool",
		Loc:       loc,
		Hint:      "provide a value",
	}
	msg := validationErr.Error()
	if !strings.Contains(msg, "shapes.go:12:3") || !strings.Contains(msg, "'Name'") {
		t.Errorf("validation error message incomplete: %s", msg)
	}

	schemaErr := &SchemaError{Msg: "unknown type", Loc: loc, Hint: "register it"}
	if schemaErr.Location() != loc {
		t.Error("schema error lost its location")
	}

	registrationErr := &RegistrationError{Msg: "duplicate"}
	if strings.Contains(registrationErr.Error(), ":0:0") {
		t.Errorf("registration error without location should omit it: %s", registrationErr.Error())
	}
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{SyntaxErrorCode, "SyntaxError"},
		{ValidationErrorCode, "ValidationError"},
		{SchemaErrorCode, "SchemaError"},
		{RegistrationErrorCode, "RegistrationError"},
		{ErrorCode(99), "UnknownError"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.expected {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestMultipleAnnotationErrors(t *testing.T) {
	loc := SourceLocation{File: "shapes.go", Line: 1, Column: 1}
	multi := &MultipleAnnotationErrors{
		Errors: []AnnotationError{
			&SyntaxError{Msg: "first", Loc: loc},
			&ValidationError{Parameter: "Name", Loc: loc},
			&ValidationError{Parameter: "Deep", Loc: loc},
		},
	}

	if !strings.Contains(multi.Error(), "3 total") {
		t.Errorf("expected count in message: %s", multi.Error())
	}

	if !multi.HasType(SyntaxErrorCode) {
		t.Error("expected a syntax error")
	}
	if multi.HasType(SchemaErrorCode) {
		t.Error("unexpected schema error")
	}
	if got := len(multi.GetByType(ValidationErrorCode)); got != 2 {
		t.Errorf("expected 2 validation errors, got %d", got)
	}
	if got := len(multi.Unwrap()); got != 3 {
		t.Errorf("Unwrap should surface all errors, got %d", got)
	}

	single := &MultipleAnnotationErrors{
		Errors: []AnnotationError{&SyntaxError{Msg: "only", Loc: loc}},
	}
	if strings.Contains(single.Error(), "total") {
		t.Errorf("single error should render directly: %s", single.Error())
	}
}

func TestSummarizeErrors(t *testing.T) {
	loc := SourceLocation{File: "shapes.go", Line: 1, Column: 1}
	summary := SummarizeErrors([]AnnotationError{
		&SyntaxError{Msg: "first", Loc: loc},
		&ValidationError{Parameter: "Name", Loc: loc},
		&SchemaError{Msg: "third", Loc: loc},
	})

	if summary.TotalCount != 3 {
		t.Errorf("expected total 3, got %d", summary.TotalCount)
	}
	if len(summary.SyntaxErrors) != 1 || len(summary.ValidationErrors) != 1 || len(summary.SchemaErrors) != 1 {
		t.Error("errors were not bucketed by code")
	}

	text := summary.String()
	if !strings.Contains(text, "3 total") {
		t.Errorf("summary text incomplete: %s", text)
	}

	empty := SummarizeErrors(nil)
	if empty.String() != "No errors found" {
		t.Errorf("empty summary should say so, got %q", empty.String())
	}
}
