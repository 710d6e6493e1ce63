package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoModParser_ParseModuleName(t *testing.T) {
	dir := t.TempDir()
	goModPath := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(goModPath, []byte("module example.com/testmod\n\ngo 1.25\n"), 0644))

	parser := NewGoModParser()
	name, err := parser.ParseModuleName(goModPath)
	require.NoError(t, err)
	assert.Equal(t, "example.com/testmod", name)
}

func TestGoModParser_ParseModuleName_NotAGoMod(t *testing.T) {
	parser := NewGoModParser()
	_, err := parser.ParseModuleName("/tmp/whatever.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a go.mod file")
}

func TestGoModParser_ParseModuleName_NoModuleLine(t *testing.T) {
	dir := t.TempDir()
	goModPath := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(goModPath, []byte("go 1.25\n"), 0644))

	parser := NewGoModParser()
	_, err := parser.ParseModuleName(goModPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no module declaration")
}

func TestGoModParser_FindGoModFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))
	goModPath := filepath.Join(root, "go.mod")
	require.NoError(t, os.WriteFile(goModPath, []byte("module example.com/testmod\n"), 0644))

	parser := NewGoModParser()
	found, err := parser.FindGoModFile(nested)
	require.NoError(t, err)
	assert.Equal(t, goModPath, found)

	moduleRoot, err := parser.ModuleRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, moduleRoot)
}

func TestGoModParser_FindGoModFile_NotFound(t *testing.T) {
	parser := NewGoModParser()
	_, err := parser.FindGoModFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go.mod file not found")
}
