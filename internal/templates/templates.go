// Package templates renders flagen's generated artifacts: per-marker
// enumeration files and the per-package directive documentation file. All
// templates live in the template registry; rendered output is unformatted
// Go source that callers pass through go/format before writing.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/flagen/flagen/internal/models"
)

// ClassenumImportPath is the import path of the bitmask algebra library every
// enumeration artifact links against.
const ClassenumImportPath = "github.com/flagen/flagen/pkg/classenum"

// generatedByLine follows the header in every artifact.
const generatedByLine = "// This file was automatically generated and should not be modified manually."

// EnumerationData is the template payload for one enumeration artifact body
type EnumerationData struct {
	EnumName    string     // enumeration type name
	MarkerName  string     // marker interface simple name (same package as the artifact)
	MarkerFQN   string     // qualified marker name for documentation
	UniverseVar string     // unexported universe variable name
	NamesList   string     // quoted display names for the MustUniverse call
	FullExpr    string     // union expression for the Full constant
	Flags       []FlagData // per-implementer data in bit-assignment order
}

// FlagData is the template payload for one flag of an enumeration
type FlagData struct {
	ConstName string // generated constant identifier
	TypeRef   string // how the artifact references the implementer type
	CaseExpr  string // type-switch case expression
	BitIndex  int    // assigned bit position
}

// MarkerDocData is the template payload for the directive documentation file
type MarkerDocData struct {
	PackageName string
}

// GenerateEnumerationFile renders the complete enumeration artifact source
// for one planned spec. Flags must already be in registry order; the bit
// index is their position in the slice.
func GenerateEnumerationFile(spec models.EnumerationSpec) (string, error) {
	importManager := NewImportManager(spec.PkgPath)
	importManager.AddImport(ClassenumImportPath)

	data := EnumerationData{
		EnumName:    spec.EnumName,
		MarkerName:  spec.Marker.Name,
		MarkerFQN:   spec.Marker.FQN(),
		UniverseVar: DefaultTemplateUtils.UniverseVarName(spec.EnumName),
		NamesList:   DefaultTemplateUtils.JoinQuoted(spec.DisplayNames()),
	}

	var constNames []string
	for i, flag := range spec.Flags {
		qualifier := importManager.EnsurePackage(flag.Class.PkgPath, flag.Class.PkgName)
		typeRef := flag.Class.Name
		if qualifier != "" {
			typeRef = qualifier + "." + flag.Class.Name
		}

		data.Flags = append(data.Flags, FlagData{
			ConstName: flag.ConstName,
			TypeRef:   typeRef,
			CaseExpr:  DefaultTemplateUtils.BuildCaseExpr(typeRef, flag.Class.RequiresPointer),
			BitIndex:  i,
		})
		constNames = append(constNames, flag.ConstName)
	}

	data.FullExpr = "0"
	if len(constNames) > 0 {
		data.FullExpr = strings.Join(constNames, " | ")
	}

	body, err := ExecuteTemplate("enumeration", DefaultTemplateRegistry.MustGet("enumeration"), data)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(models.GeneratedHeader + "\n")
	builder.WriteString(generatedByLine + "\n\n")
	builder.WriteString(fmt.Sprintf("package %s\n\n", spec.PkgName))
	if imports := importManager.GenerateImports(); imports != "" {
		builder.WriteString(imports)
		builder.WriteString("\n")
	}
	builder.WriteString(body)

	return builder.String(), nil
}

// GenerateMarkerDocFile renders the content-stable directive documentation
// artifact for one package. Regeneration always produces identical bytes.
func GenerateMarkerDocFile(packageName string) (string, error) {
	body, err := ExecuteTemplate("marker-doc", DefaultTemplateRegistry.MustGet("marker-doc"), MarkerDocData{PackageName: packageName})
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(models.GeneratedHeader + "\n")
	builder.WriteString(generatedByLine + "\n\n")
	builder.WriteString(fmt.Sprintf("package %s\n\n", packageName))
	builder.WriteString(body)

	return builder.String(), nil
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// ExecuteTemplate executes a Go template with the given data (exported version)
func ExecuteTemplate(name, templateStr string, data interface{}) (string, error) {
	return executeTemplate(name, templateStr, data)
}
