package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGoCodeString(t *testing.T) {
	messy := "package x\n\nfunc   Y( ) int {\nreturn   1}\n"

	formatted, err := FormatGoCodeString(messy)
	require.NoError(t, err)
	assert.Equal(t, "package x\n\nfunc Y() int {\n\treturn 1\n}\n", formatted)
}

func TestFormatGoCodeString_InvalidSyntax(t *testing.T) {
	broken := "package x\n\nfunc {{{"

	_, err := FormatGoCodeString(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Go syntax")
}

func TestValidateGoCode(t *testing.T) {
	assert.NoError(t, ValidateGoCode("package x\n\nvar V = 1\n"))
	assert.Error(t, ValidateGoCode("package x\n\nvar V = \n"))
}
