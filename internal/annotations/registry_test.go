package annotations

import "testing"

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(MarkerAnnotation, MarkerAnnotationSchema)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	schema, err := registry.GetSchema(MarkerAnnotation)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}
	if schema.Type != MarkerAnnotation {
		t.Errorf("expected marker schema, got %v", schema.Type)
	}
	if _, exists := schema.Parameters["Name"]; !exists {
		t.Error("expected marker schema to define the Name parameter")
	}

	if !registry.IsRegistered(MarkerAnnotation) {
		t.Error("expected marker to be registered")
	}
	if registry.IsRegistered(ExcludeAnnotation) {
		t.Error("exclude should not be registered yet")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.GetSchema(ExcludeAnnotation)
	if err == nil {
		t.Fatal("expected error for unregistered annotation type")
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(MarkerAnnotation, MarkerAnnotationSchema); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := registry.Register(MarkerAnnotation, MarkerAnnotationSchema); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}

func TestRegistryRejectsMismatchedType(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(ExcludeAnnotation, MarkerAnnotationSchema)
	if err == nil {
		t.Fatal("expected error when schema type does not match annotation type")
	}
}

func TestRegistryRejectsBadDefaultValue(t *testing.T) {
	registry := NewRegistry()

	schema := AnnotationSchema{
		Type: MarkerAnnotation,
		Parameters: map[string]ParameterSpec{
			"Name": {
				Type:         StringType,
				DefaultValue: true, // wrong type on purpose
			},
		},
	}

	if err := registry.Register(MarkerAnnotation, schema); err == nil {
		t.Fatal("expected error for default value type mismatch")
	}
}

func TestRegistryListTypes(t *testing.T) {
	registry := NewRegistry()
	if err := RegisterBuiltinSchemas(registry); err != nil {
		t.Fatalf("RegisterBuiltinSchemas failed: %v", err)
	}

	types := registry.ListTypes()
	if len(types) != 2 {
		t.Fatalf("expected 2 registered types, got %d", len(types))
	}

	seen := make(map[AnnotationType]bool)
	for _, annotationType := range types {
		seen[annotationType] = true
	}
	if !seen[MarkerAnnotation] || !seen[ExcludeAnnotation] {
		t.Errorf("expected marker and exclude in %v", types)
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	if !registry.IsRegistered(MarkerAnnotation) {
		t.Error("default registry should know the marker annotation")
	}
	if !registry.IsRegistered(ExcludeAnnotation) {
		t.Error("default registry should know the exclude annotation")
	}

	if DefaultRegistry() != registry {
		t.Error("DefaultRegistry should return the same instance")
	}
}
