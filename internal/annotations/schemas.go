package annotations

import (
	"fmt"
	"unicode"
)

// Built-in annotation schemas

// MarkerAnnotationSchema defines the schema for //flagen::marker annotations
var MarkerAnnotationSchema = AnnotationSchema{
	Type:        MarkerAnnotation,
	Description: "Marks an interface as a flag marker whose implementers become an enumeration",
	Parameters: map[string]ParameterSpec{
		"Name": {
			Type:        StringType,
			Required:    false,
			Description: "Custom enumeration type name (defaults to the interface name without its leading marker character plus 'Enumeration')",
			Validator:   ValidateEnumerationName,
		},
	},
	Examples: []string{
		"//flagen::marker",
		"//flagen::marker -Name=ShapeKinds",
		"//flagen::marker -Name=\"AbilitySet\"",
	},
}

// ExcludeAnnotationSchema defines the schema for //flagen::exclude annotations
var ExcludeAnnotationSchema = AnnotationSchema{
	Type:        ExcludeAnnotation,
	Description: "Excludes a type from every enumeration it would otherwise join",
	Parameters:  map[string]ParameterSpec{}, // No parameters - just //flagen::exclude
	Examples: []string{
		"//flagen::exclude",
	},
}

// ValidateEnumerationName checks that a Name override is an exported Go identifier.
func ValidateEnumerationName(v interface{}) error {
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("must be a string, got %T", v)
	}
	if name == "" {
		return fmt.Errorf("cannot be empty")
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return fmt.Errorf("must be an exported Go identifier (start with an uppercase letter), got '%s'", name)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("must be a valid Go identifier, got '%s'", name)
		}
	}
	return nil
}

// RegisterBuiltinSchemas registers all built-in annotation schemas with the given registry
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		MarkerAnnotationSchema,
		ExcludeAnnotationSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type.String(), err)
		}
	}

	return nil
}

// GetBuiltinSchemas returns all built-in annotation schemas
func GetBuiltinSchemas() []AnnotationSchema {
	return []AnnotationSchema{
		MarkerAnnotationSchema,
		ExcludeAnnotationSchema,
	}
}
