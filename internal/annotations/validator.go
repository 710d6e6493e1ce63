package annotations

import (
	"fmt"
	"strconv"
)

// SchemaValidator defines the interface for validating annotations against their schemas
type SchemaValidator interface {
	// Validate annotation against its schema
	Validate(annotation *ParsedAnnotation, schema AnnotationSchema) error

	// ApplyDefaults applies default values for missing optional parameters
	ApplyDefaults(annotation *ParsedAnnotation, schema AnnotationSchema) error

	// TransformParameters transforms parameter values to correct types
	TransformParameters(annotation *ParsedAnnotation, schema AnnotationSchema) error
}

// validator is the concrete implementation of SchemaValidator
type validator struct{}

// NewValidator creates a new schema validator
func NewValidator() SchemaValidator {
	return &validator{}
}

// Validate validates an annotation against its schema
func (v *validator) Validate(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	var errors []AnnotationError

	// Validate required parameters are present
	for paramName, paramSpec := range schema.Parameters {
		if paramSpec.Required {
			if _, exists := annotation.Parameters[paramName]; !exists {
				errors = append(errors, &ValidationError{
					Parameter: paramName,
					Expected:  fmt.Sprintf("required parameter of type %s", paramSpec.Type.String()),
					Actual:    "missing",
					Loc:       annotation.Location,
					Hint:      fmt.Sprintf("Add -%s=<value> to the annotation", paramName),
				})
			}
		}
	}

	// Validate parameter types and values
	for paramName, paramValue := range annotation.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			errors = append(errors, &ValidationError{
				Parameter: paramName,
				Expected:  "known parameter",
				Actual:    fmt.Sprintf("unknown parameter '%s'", paramName),
				Loc:       annotation.Location,
				Hint:      generateUnknownParameterSuggestion(paramName, annotation.Type),
			})
			continue
		}

		// Validate parameter type
		if err := v.validateParameterType(paramName, paramSpec.Type, paramValue, annotation.Location); err != nil {
			errors = append(errors, err)
			continue
		}

		// Run custom validator if present
		if paramSpec.Validator != nil {
			if err := paramSpec.Validator(paramValue); err != nil {
				errors = append(errors, &ValidationError{
					Parameter: paramName,
					Expected:  "valid value",
					Actual:    fmt.Sprintf("%v", paramValue),
					Loc:       annotation.Location,
					Hint:      err.Error(),
				})
			}
		}
	}

	// Run custom annotation validators
	for _, customValidator := range schema.Validators {
		if err := customValidator(annotation); err != nil {
			errors = append(errors, &SchemaError{
				Msg:  err.Error(),
				Loc:  annotation.Location,
				Hint: "Check annotation parameters and their combinations",
			})
		}
	}

	if len(errors) > 0 {
		return &MultipleAnnotationErrors{Errors: errors}
	}

	return nil
}

// ApplyDefaults applies default values for missing optional parameters
func (v *validator) ApplyDefaults(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	if annotation.Parameters == nil {
		annotation.Parameters = make(map[string]interface{})
	}

	for paramName, paramSpec := range schema.Parameters {
		if _, exists := annotation.Parameters[paramName]; !exists && paramSpec.DefaultValue != nil {
			annotation.Parameters[paramName] = paramSpec.DefaultValue
		}
	}

	return nil
}

// TransformParameters transforms parameter values to correct types
func (v *validator) TransformParameters(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	for paramName, paramValue := range annotation.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			continue // Unknown parameters are caught in validation
		}

		transformedValue, err := v.transformParameterValue(paramValue, paramSpec.Type)
		if err != nil {
			return &ValidationError{
				Parameter: paramName,
				Expected:  fmt.Sprintf("value convertible to %s", paramSpec.Type.String()),
				Actual:    fmt.Sprintf("%v (%T)", paramValue, paramValue),
				Loc:       annotation.Location,
				Hint:      fmt.Sprintf("Ensure the value can be converted to %s", paramSpec.Type.String()),
			}
		}

		annotation.Parameters[paramName] = transformedValue
	}

	return nil
}

// validateParameterType validates that a parameter value matches the expected type
func (v *validator) validateParameterType(paramName string, expectedType ParameterType, value interface{}, location SourceLocation) AnnotationError {
	switch expectedType {
	case StringType:
		if _, ok := value.(string); !ok {
			return &ValidationError{
				Parameter: paramName,
				Expected:  "string",
				Actual:    fmt.Sprintf("%T", value),
				Loc:       location,
				Hint:      fmt.Sprintf("Provide a value: -%s=<value>", paramName),
			}
		}
	case BoolType:
		if _, ok := value.(bool); !ok {
			return &ValidationError{
				Parameter: paramName,
				Expected:  "bool",
				Actual:    fmt.Sprintf("%T", value),
				Loc:       location,
				Hint:      "Use true/false or provide as a bare flag",
			}
		}
	default:
		return &ValidationError{
			Parameter: paramName,
			Expected:  "known type",
			Actual:    fmt.Sprintf("unknown type %d", expectedType),
			Loc:       location,
			Hint:      "This is a schema definition error",
		}
	}

	return nil
}

// transformParameterValue attempts to transform a value to the target type
func (v *validator) transformParameterValue(value interface{}, targetType ParameterType) (interface{}, error) {
	if v.isCorrectType(value, targetType) {
		return value, nil
	}

	// Values arrive from the parser as strings or bools
	if strValue, ok := value.(string); ok {
		return v.convertFromString(strValue, targetType)
	}

	return nil, fmt.Errorf("cannot convert %T to %s", value, targetType.String())
}

// isCorrectType checks if a value is already the correct type
func (v *validator) isCorrectType(value interface{}, targetType ParameterType) bool {
	switch targetType {
	case StringType:
		_, ok := value.(string)
		return ok
	case BoolType:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}

// convertFromString converts a string value to the target type
func (v *validator) convertFromString(strValue string, targetType ParameterType) (interface{}, error) {
	switch targetType {
	case StringType:
		return strValue, nil
	case BoolType:
		return strconv.ParseBool(strValue)
	default:
		return nil, fmt.Errorf("unsupported target type: %d", targetType)
	}
}
