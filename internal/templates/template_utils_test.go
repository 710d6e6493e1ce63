package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AbilityEnumeration", "ability_enumeration"},
		{"PrerequisiteEnumeration", "prerequisite_enumeration"},
		{"HTTPServerEnumeration", "http_server_enumeration"},
		{"Ability2Enumeration", "ability2_enumeration"},
		{"Power", "power"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultTemplateUtils.SnakeCase(tt.input))
		})
	}
}

func TestBuildEnumerationName(t *testing.T) {
	tests := []struct {
		marker   string
		expected string
	}{
		{"IPrerequisite", "PrerequisiteEnumeration"},
		{"Prerequisite", "PrerequisiteEnumeration"},
		{"IAbility", "AbilityEnumeration"},
		{"Item", "ItemEnumeration"},
		{"IO", "OEnumeration"},
		{"I", "IEnumeration"},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultTemplateUtils.BuildEnumerationName(tt.marker))
		})
	}
}

func TestExportedIdent(t *testing.T) {
	assert.Equal(t, "FireTrap", DefaultTemplateUtils.ExportedIdent("fireTrap"))
	assert.Equal(t, "Fireball", DefaultTemplateUtils.ExportedIdent("Fireball"))
	assert.Equal(t, "", DefaultTemplateUtils.ExportedIdent(""))
}

func TestBuildConstName(t *testing.T) {
	assert.Equal(t, "AbilityEnumerationFireball",
		DefaultTemplateUtils.BuildConstName("AbilityEnumeration", "Fireball"))
	assert.Equal(t, "AbilityEnumerationFireTrap",
		DefaultTemplateUtils.BuildConstName("AbilityEnumeration", "fireTrap"))
}

func TestBuildCaseExpr(t *testing.T) {
	assert.Equal(t, "Fireball, *Fireball", DefaultTemplateUtils.BuildCaseExpr("Fireball", false))
	assert.Equal(t, "*Heal", DefaultTemplateUtils.BuildCaseExpr("Heal", true))
	assert.Equal(t, "effects.Burn, *effects.Burn", DefaultTemplateUtils.BuildCaseExpr("effects.Burn", false))
}

func TestBuildArtifactFileName(t *testing.T) {
	assert.Equal(t, "autogen_ability_enumeration.go",
		DefaultTemplateUtils.BuildArtifactFileName("AbilityEnumeration"))
	assert.Equal(t, "autogen_power.go",
		DefaultTemplateUtils.BuildArtifactFileName("Power"))
}

func TestUniverseVarName(t *testing.T) {
	assert.Equal(t, "abilityEnumerationUniverse",
		DefaultTemplateUtils.UniverseVarName("AbilityEnumeration"))
}

func TestJoinQuoted(t *testing.T) {
	assert.Equal(t, `"Burn", "Fireball"`, DefaultTemplateUtils.JoinQuoted([]string{"Burn", "Fireball"}))
	assert.Equal(t, `"Solo"`, DefaultTemplateUtils.JoinQuoted([]string{"Solo"}))
	assert.Equal(t, "", DefaultTemplateUtils.JoinQuoted(nil))
}
