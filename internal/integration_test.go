package internal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flagen/flagen/internal/loader"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/resolver"
	"github.com/flagen/flagen/internal/scanner"
	"github.com/flagen/flagen/internal/synthesizer"
	"github.com/flagen/flagen/internal/utils"
)

// TestEnumerationGenerationIntegration drives the complete pipeline over the
// checked-in fixture module: load packages, scan for directives, resolve
// implementers, synthesize the artifact.
func TestEnumerationGenerationIntegration(t *testing.T) {
	diag := utils.NewQuietDiagnostics()

	snapshot, err := loader.Load(context.Background(), loader.Options{
		Dir: filepath.Join("loader", "testdata", "markers"),
	}, diag)
	require.NoError(t, err)

	scan := scanner.New(diag).Scan(snapshot)
	require.Len(t, scan.Markers, 1)

	marker := scan.Markers[0]
	assert.Equal(t, "IAbility", marker.Name)
	assert.Equal(t, "example.com/markers/abilities.IAbility", marker.FQN())

	classes, err := resolver.New(snapshot, diag).Resolve(marker, scan.Exclusions)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Fireball", classes[0].Name)
	assert.False(t, classes[0].RequiresPointer)
	assert.Equal(t, "Heal", classes[1].Name)
	assert.True(t, classes[1].RequiresPointer)

	synth := synthesizer.New(diag)
	artifact, err := synth.Synthesize(marker, classes)
	require.NoError(t, err)
	require.NotNil(t, artifact)

	assert.Equal(t, marker.Dir, filepath.Dir(artifact.FilePath))
	assert.Equal(t, "autogen_ability_enumeration.go", filepath.Base(artifact.FilePath))
	assert.Equal(t, "abilities", artifact.PackageName)
	assert.Equal(t, "AbilityEnumeration", artifact.EnumName)

	content := artifact.Content
	assert.Contains(t, content, models.GeneratedHeader)
	assert.Contains(t, content, "package abilities")
	assert.Contains(t, content, `"github.com/flagen/flagen/pkg/classenum"`)

	// Implementers are bit-assigned in ascending name order.
	assert.Contains(t, content, "type AbilityEnumeration uint32")
	assert.Contains(t, content, "AbilityEnumerationEmpty AbilityEnumeration = 0")
	assert.Contains(t, content, "AbilityEnumerationFireball AbilityEnumeration = 1 << 0")
	assert.Contains(t, content, "AbilityEnumerationHeal AbilityEnumeration = 1 << 1")
	assert.Contains(t, content, "AbilityEnumerationFull AbilityEnumeration = AbilityEnumerationFireball | AbilityEnumerationHeal")
	assert.Contains(t, content, `var abilityEnumerationUniverse = classenum.MustUniverse("Fireball", "Heal")`)

	// The instance folder is typed against the marker interface itself, and
	// the value-receiver implementer matches as both T and *T.
	assert.Contains(t, content, "func AbilityEnumerationFromInstances(instances ...IAbility) (AbilityEnumeration, error)")
	assert.Contains(t, content, "case Fireball, *Fireball:")
	assert.Contains(t, content, "case *Heal:")

	assert.Contains(t, content, "func AbilityEnumerationOf(flags ...AbilityEnumeration) AbilityEnumeration")
	assert.Contains(t, content, "func AbilityEnumerationValues() map[string]AbilityEnumeration")
	assert.Contains(t, content, "func (e AbilityEnumeration) With(flags ...AbilityEnumeration) AbilityEnumeration")
	assert.Contains(t, content, "func (e AbilityEnumeration) Without(flags ...AbilityEnumeration) AbilityEnumeration")
	assert.Contains(t, content, "func (e AbilityEnumeration) Has(flags ...AbilityEnumeration) bool")
	assert.Contains(t, content, "func (e AbilityEnumeration) Lacks(flags ...AbilityEnumeration) bool")
	assert.Contains(t, content, "func (e AbilityEnumeration) Inverse() AbilityEnumeration")
	assert.Contains(t, content, "func (e AbilityEnumeration) FlagNames() []string")
	assert.Contains(t, content, "func (e AbilityEnumeration) String() string")

	// Rendered output is already canonical.
	formatted, err := utils.FormatGoCodeString(content)
	require.NoError(t, err)
	assert.Equal(t, content, formatted)

	again, err := synth.Synthesize(marker, classes)
	require.NoError(t, err)
	assert.Equal(t, content, again.Content, "regeneration should be byte-identical")
}

// TestMarkerDocGenerationIntegration checks the per-package directive
// documentation artifact produced alongside the enumerations.
func TestMarkerDocGenerationIntegration(t *testing.T) {
	diag := utils.NewQuietDiagnostics()

	snapshot, err := loader.Load(context.Background(), loader.Options{
		Dir: filepath.Join("loader", "testdata", "markers"),
	}, diag)
	require.NoError(t, err)

	scan := scanner.New(diag).Scan(snapshot)
	require.Len(t, scan.Markers, 1)
	marker := scan.Markers[0]

	synth := synthesizer.New(diag)
	doc, err := synth.MarkerDoc(marker.PkgName, marker.PkgPath, marker.Dir)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, models.MarkerDocFile, filepath.Base(doc.FilePath))
	assert.Equal(t, marker.Dir, filepath.Dir(doc.FilePath))
	assert.Empty(t, doc.EnumName)

	assert.Contains(t, doc.Content, models.GeneratedHeader)
	assert.Contains(t, doc.Content, `MarkerDirective = "flagen::marker"`)
	assert.Contains(t, doc.Content, `ExcludeDirective = "flagen::exclude"`)

	again, err := synth.MarkerDoc(marker.PkgName, marker.PkgPath, marker.Dir)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, again.Content)
}
