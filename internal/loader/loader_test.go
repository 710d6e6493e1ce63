package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/flagen/flagen/internal/utils"
)

func TestLoadSnapshot(t *testing.T) {
	diag := utils.NewQuietDiagnostics()

	snapshot, err := Load(context.Background(), Options{
		Dir: filepath.Join("testdata", "markers"),
	}, diag)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.Packages)
	require.NotNil(t, snapshot.Fset)

	pkg := snapshot.Find("example.com/markers/abilities")
	require.NotNil(t, pkg, "abilities package should be in the snapshot")
	assert.Equal(t, "abilities", pkg.Name)
	assert.NotNil(t, pkg.Types, "type information should be loaded")
	assert.NotEmpty(t, pkg.Syntax, "syntax trees should be loaded")
	assert.NotEmpty(t, Dir(pkg), "package directory should resolve")
}

func TestLoadExplicitPattern(t *testing.T) {
	diag := utils.NewQuietDiagnostics()

	snapshot, err := Load(context.Background(), Options{
		Dir:      filepath.Join("testdata", "markers"),
		Patterns: []string{"./abilities"},
	}, diag)
	require.NoError(t, err)

	require.NotNil(t, snapshot.Find("example.com/markers/abilities"))
}

func TestSnapshotFindMissing(t *testing.T) {
	snapshot := &Snapshot{}
	assert.Nil(t, snapshot.Find("example.com/nope"))
}

func TestDirWithoutFiles(t *testing.T) {
	assert.Equal(t, "", Dir(&packages.Package{}))
}
