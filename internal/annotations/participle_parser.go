package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// annotationPrefix is the marker every flagen annotation carries after '//'.
const annotationPrefix = "flagen::"

// ParserEngine defines the core parsing functionality
type ParserEngine interface {
	ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error)
	ValidateAnnotation(annotation *ParsedAnnotation) error
}

// ParticipleParser parses annotation comments using alecthomas/participle
type ParticipleParser struct {
	parser    *participle.Parser[Annotation]
	registry  AnnotationRegistry
	validator SchemaValidator
}

// Annotation represents the grammar root of a flagen annotation
type Annotation struct {
	Comment   string     `parser:"@Comment"`
	Tool      string     `parser:"@Tool"`
	Separator string     `parser:"@Separator"`
	Directive string     `parser:"@Ident"`
	Arguments []Argument `parser:"@@*"`
}

// Argument represents a single -Key or -Key=Value argument
type Argument struct {
	Key   string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(String | Ident))?"`
}

// NewParticipleParser creates a new parser using participle
func NewParticipleParser(registry AnnotationRegistry) *ParticipleParser {
	// Define the lexer
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Tool", Pattern: `flagen`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[Annotation](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &ParticipleParser{
		parser:    parser,
		registry:  registry,
		validator: NewValidator(),
	}
}

// IsAnnotation reports whether a comment line looks like a flagen annotation.
func IsAnnotation(comment string) bool {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, "//") {
		return false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	return strings.HasPrefix(rest, annotationPrefix)
}

// ParseAnnotation parses an annotation string
func (p *ParticipleParser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	line := strings.TrimSpace(comment)

	if !IsAnnotation(line) {
		return nil, NewSyntaxErrorWithContext("annotation must start with '//' and carry the 'flagen::' prefix", location)
	}

	ast, err := p.parser.ParseString(location.File, line)
	if err != nil {
		return nil, &SyntaxError{
			Msg:  fmt.Sprintf("malformed annotation: %v", err),
			Loc:  location,
			Hint: generateSyntaxSuggestion(err.Error()),
		}
	}

	annotationType, err := ParseAnnotationType(ast.Directive)
	if err != nil {
		return nil, &SchemaError{
			Msg:  fmt.Sprintf("unknown annotation type '%s'", ast.Directive),
			Loc:  location,
			Hint: "Supported annotation types: marker, exclude",
		}
	}

	if p.registry != nil && !p.registry.IsRegistered(annotationType) {
		return nil, &SchemaError{
			Msg:  fmt.Sprintf("annotation type '%s' is not registered", ast.Directive),
			Loc:  location,
			Hint: "Register the annotation schema before parsing",
		}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        comment,
	}

	for _, arg := range ast.Arguments {
		if arg.Value != nil {
			parsed.Parameters[arg.Key] = unquote(*arg.Value)
		} else {
			parsed.Parameters[arg.Key] = p.bareArgumentValue(arg.Key, annotationType)
		}
	}

	if err := p.ValidateAnnotation(parsed); err != nil {
		return nil, err
	}

	return parsed, nil
}

// ValidateAnnotation validates a parsed annotation against its registered schema
func (p *ParticipleParser) ValidateAnnotation(annotation *ParsedAnnotation) error {
	if p.registry == nil || p.validator == nil {
		return nil
	}

	schema, err := p.registry.GetSchema(annotation.Type)
	if err != nil {
		return &SchemaError{
			Msg:  fmt.Sprintf("no schema found for annotation type: %s", annotation.Type),
			Loc:  annotation.Location,
			Hint: "Check if annotation type is registered",
		}
	}

	if err := p.validator.ApplyDefaults(annotation, schema); err != nil {
		return err
	}
	if err := p.validator.TransformParameters(annotation, schema); err != nil {
		return err
	}
	return p.validator.Validate(annotation, schema)
}

// bareArgumentValue resolves a -Flag argument written without a value.
// Boolean parameters read as true, parameters with defaults read as their
// default, anything else stays true so type validation reports it.
func (p *ParticipleParser) bareArgumentValue(key string, annotationType AnnotationType) interface{} {
	if p.registry == nil {
		return true
	}

	schema, err := p.registry.GetSchema(annotationType)
	if err != nil {
		return true
	}

	spec, exists := schema.Parameters[key]
	if !exists {
		return true
	}
	if spec.Type == BoolType {
		return true
	}
	if spec.DefaultValue != nil {
		return spec.DefaultValue
	}
	return true
}

// unquote removes surrounding quotes from a parameter value
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
