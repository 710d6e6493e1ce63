package templates

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/flagen/flagen/internal/models"
)

// TemplateUtils provides common utilities for template generation
type TemplateUtils struct{}

// NewTemplateUtils creates a new template utilities instance
func NewTemplateUtils() *TemplateUtils {
	return &TemplateUtils{}
}

// ToCamelCase converts a string to camelCase
func (tu *TemplateUtils) ToCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ExportedIdent uppercases the first rune so the name can serve as an
// exported identifier fragment
func (tu *TemplateUtils) ExportedIdent(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// SnakeCase converts an identifier to snake_case for file names. Acronym
// runs stay together: HTTPServer becomes http_server.
func (tu *TemplateUtils) SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BuildEnumerationName derives the enumeration type name from a marker
// interface name: a conventional leading I is stripped when followed by
// another capital, then the Enumeration suffix is appended
func (tu *TemplateUtils) BuildEnumerationName(markerName string) string {
	base := markerName
	runes := []rune(markerName)
	if len(runes) >= 2 && runes[0] == 'I' && unicode.IsUpper(runes[1]) {
		base = string(runes[1:])
	}
	return base + "Enumeration"
}

// BuildConstName creates a flag constant identifier from the enumeration
// type name and an implementer display name
func (tu *TemplateUtils) BuildConstName(enumName, displayName string) string {
	return enumName + tu.ExportedIdent(displayName)
}

// BuildCaseExpr builds the type-switch case expression for one implementer.
// Value-receiver implementers satisfy the marker as both T and *T; pointer
// receivers only as *T.
func (tu *TemplateUtils) BuildCaseExpr(typeRef string, requiresPointer bool) string {
	if requiresPointer {
		return "*" + typeRef
	}
	return typeRef + ", *" + typeRef
}

// BuildArtifactFileName creates the artifact file name for an enumeration
func (tu *TemplateUtils) BuildArtifactFileName(enumName string) string {
	return models.ArtifactPrefix + tu.SnakeCase(enumName) + ".go"
}

// UniverseVarName creates the unexported universe variable name for an
// enumeration
func (tu *TemplateUtils) UniverseVarName(enumName string) string {
	return tu.ToCamelCase(enumName) + "Universe"
}

// QuoteString wraps a string in quotes for code generation
func (tu *TemplateUtils) QuoteString(s string) string {
	return `"` + s + `"`
}

// JoinQuoted joins strings with quotes and commas for argument lists
func (tu *TemplateUtils) JoinQuoted(items []string) string {
	if len(items) == 0 {
		return ""
	}

	var quoted []string
	for _, item := range items {
		quoted = append(quoted, tu.QuoteString(item))
	}

	return strings.Join(quoted, ", ")
}

// DefaultTemplateUtils provides a global instance for convenience
var DefaultTemplateUtils = NewTemplateUtils()
