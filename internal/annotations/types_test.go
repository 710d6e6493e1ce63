package annotations

import "testing"

func TestAnnotationTypeString(t *testing.T) {
	tests := []struct {
		annotationType AnnotationType
		expected       string
	}{
		{MarkerAnnotation, "marker"},
		{ExcludeAnnotation, "exclude"},
		{AnnotationType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.annotationType.String(); got != tt.expected {
			t.Errorf("AnnotationType(%d).String() = %q, want %q", tt.annotationType, got, tt.expected)
		}
	}
}

func TestParseAnnotationType(t *testing.T) {
	markerType, err := ParseAnnotationType("marker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if markerType != MarkerAnnotation {
		t.Errorf("expected MarkerAnnotation, got %v", markerType)
	}

	excludeType, err := ParseAnnotationType("exclude")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if excludeType != ExcludeAnnotation {
		t.Errorf("expected ExcludeAnnotation, got %v", excludeType)
	}

	if _, err := ParseAnnotationType("controller"); err == nil {
		t.Error("expected error for unknown annotation type")
	}
}

func TestParsedAnnotationAccessors(t *testing.T) {
	annotation := &ParsedAnnotation{
		Type: MarkerAnnotation,
		Parameters: map[string]interface{}{
			"Name":    "ShapeKinds",
			"Enabled": true,
		},
	}

	if got := annotation.GetString("Name"); got != "ShapeKinds" {
		t.Errorf("GetString(Name) = %q, want ShapeKinds", got)
	}
	if got := annotation.GetString("Missing"); got != "" {
		t.Errorf("GetString(Missing) = %q, want empty", got)
	}
	if got := annotation.GetString("Missing", "fallback"); got != "fallback" {
		t.Errorf("GetString(Missing, fallback) = %q, want fallback", got)
	}
	// Wrong-typed lookups fall back to the default
	if got := annotation.GetString("Enabled", "fallback"); got != "fallback" {
		t.Errorf("GetString(Enabled, fallback) = %q, want fallback", got)
	}

	if !annotation.GetBool("Enabled") {
		t.Error("GetBool(Enabled) should be true")
	}
	if annotation.GetBool("Missing") {
		t.Error("GetBool(Missing) should default to false")
	}
	if !annotation.GetBool("Missing", true) {
		t.Error("GetBool(Missing, true) should use the default")
	}

	if !annotation.HasParameter("Name") {
		t.Error("HasParameter(Name) should be true")
	}
	if annotation.HasParameter("Missing") {
		t.Error("HasParameter(Missing) should be false")
	}
}

func TestParameterTypeString(t *testing.T) {
	if StringType.String() != "string" {
		t.Errorf("StringType.String() = %q", StringType.String())
	}
	if BoolType.String() != "bool" {
		t.Errorf("BoolType.String() = %q", BoolType.String())
	}
	if ParameterType(42).String() != "unknown" {
		t.Errorf("ParameterType(42).String() = %q", ParameterType(42).String())
	}
}
