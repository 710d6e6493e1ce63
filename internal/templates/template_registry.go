package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerEnumerationTemplates()
	registry.registerMarkerTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerEnumerationTemplates registers the enumeration artifact body
func (tr *TemplateRegistry) registerEnumerationTemplates() {
	tr.templates["enumeration"] = `// {{.EnumName}} is the closed, immutable flag set over the implementers of
// {{.MarkerFQN}}. Each implementer holds one bit, assigned in the ascending
// order of implementer names; values combine with set algebra and never
// mutate.
type {{.EnumName}} uint32

const (
	// {{.EnumName}}Empty selects no implementers.
	{{.EnumName}}Empty {{.EnumName}} = 0
{{range .Flags}}
	// {{.ConstName}} selects {{.TypeRef}}.
	{{.ConstName}} {{$.EnumName}} = 1 << {{.BitIndex}}
{{end}}
	// {{.EnumName}}Full selects every implementer.
	{{.EnumName}}Full {{.EnumName}} = {{.FullExpr}}
)

// {{.UniverseVar}} carries the display-name table in bit-assignment order.
var {{.UniverseVar}} = classenum.MustUniverse({{.NamesList}})

// {{.EnumName}}FromInstances folds instances into the set of their concrete
// types. A nil instance or a type outside the enumeration returns an error,
// never a silent {{.EnumName}}Empty.
func {{.EnumName}}FromInstances(instances ...{{.MarkerName}}) ({{.EnumName}}, error) {
	result := {{.EnumName}}Empty
	for _, instance := range instances {
		switch instance.(type) {
{{range .Flags}}		case {{.CaseExpr}}:
			result |= {{.ConstName}}
{{end}}		default:
			return {{.EnumName}}Empty, classenum.NewUnknownImplementerError("{{.EnumName}}", instance)
		}
	}
	return result, nil
}

// {{.EnumName}}Of returns the union of the given flags.
func {{.EnumName}}Of(flags ...{{.EnumName}}) {{.EnumName}} {
	result := {{.EnumName}}Empty
	for _, flag := range flags {
		result |= flag
	}
	return result
}

// {{.EnumName}}Values returns display name to flag for every implementer.
func {{.EnumName}}Values() map[string]{{.EnumName}} {
	values := make(map[string]{{.EnumName}}, {{.UniverseVar}}.Size())
	for _, def := range {{.UniverseVar}}.Flags() {
		values[def.Name] = {{.EnumName}}(def.Flag)
	}
	return values
}

// With returns a copy of e with the given flags set.
func (e {{.EnumName}}) With(flags ...{{.EnumName}}) {{.EnumName}} {
	return e | {{.EnumName}}Of(flags...)
}

// Without returns a copy of e with the given flags cleared.
func (e {{.EnumName}}) Without(flags ...{{.EnumName}}) {{.EnumName}} {
	return e &^ {{.EnumName}}Of(flags...)
}

// Has reports whether e contains every one of the given flags.
func (e {{.EnumName}}) Has(flags ...{{.EnumName}}) bool {
	union := {{.EnumName}}Of(flags...)
	return e&union == union
}

// Lacks reports whether e contains none of the given flags.
func (e {{.EnumName}}) Lacks(flags ...{{.EnumName}}) bool {
	return e&{{.EnumName}}Of(flags...) == 0
}

// Inverse returns the complement of e relative to the universe. Bits outside
// the universe are never set.
func (e {{.EnumName}}) Inverse() {{.EnumName}} {
	return {{.EnumName}}Full &^ e
}

// FlagNames returns the names of the set flags in bit-assignment order.
func (e {{.EnumName}}) FlagNames() []string {
	return {{.UniverseVar}}.Names(classenum.Set(e))
}

// String returns the set flag names joined by ", "; the empty set is "".
func (e {{.EnumName}}) String() string {
	return {{.UniverseVar}}.Format(classenum.Set(e))
}
`
}

// registerMarkerTemplates registers the per-package directive documentation
func (tr *TemplateRegistry) registerMarkerTemplates() {
	tr.templates["marker-doc"] = `// Directive comments recognized by flagen in this package:
//
//	//flagen::marker [-Name=CustomEnumName]
//		on an interface declaration: generates a closed flag enumeration
//		over the concrete types whose method sets satisfy it.
//	//flagen::exclude
//		on a type declaration: removes the type from every enumeration.
const (
	// MarkerDirective declares a marker interface when it leads a doc comment.
	MarkerDirective = "flagen::marker"

	// ExcludeDirective removes a type from every enumeration's implementer set.
	ExcludeDirective = "flagen::exclude"
)
`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
