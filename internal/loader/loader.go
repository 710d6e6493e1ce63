// Package loader materializes the typed snapshot of the scanned program.
// Everything downstream works against this snapshot: the scanner walks its
// syntax trees, the resolver queries its type information.
package loader

import (
	"context"
	"fmt"
	"go/token"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/utils"
)

// loadMode requests syntax for annotation scanning and full type information
// for implementer resolution.
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedTypes |
	packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedImports

// Snapshot is the loaded view of the scanned program
type Snapshot struct {
	Fset     *token.FileSet      // shared position information for all packages
	Packages []*packages.Package // loaded packages in load order, deduplicated
}

// Options controls what gets loaded
type Options struct {
	Dir      string   // working directory for the load, empty means current
	Patterns []string // package patterns, defaults to ./...
	Tests    bool     // whether to include test packages
}

// Load reads the packages matched by the options into a snapshot. Packages
// that fail to type-check are kept with a warning so their annotations still
// surface useful errors downstream.
func Load(ctx context.Context, opts Options, diag *utils.DiagnosticSystem) (*Snapshot, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     opts.Dir,
		Context: ctx,
		Fset:    fset,
		Tests:   opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.NewLoadError(patterns, err)
	}
	if len(pkgs) == 0 {
		return nil, errors.NewLoadError(patterns, fmt.Errorf("no packages matched"))
	}

	snapshot := &Snapshot{Fset: fset}
	seen := make(map[string]bool, len(pkgs))
	for _, pkg := range pkgs {
		if pkg.PkgPath == "" || seen[pkg.PkgPath] {
			continue
		}
		seen[pkg.PkgPath] = true

		for _, loadErr := range pkg.Errors {
			diag.Warn("package %s: %s", pkg.PkgPath, loadErr.Msg)
		}

		snapshot.Packages = append(snapshot.Packages, pkg)
	}

	diag.Verbose("Loaded %d package(s)", len(snapshot.Packages))
	return snapshot, nil
}

// Dir returns the directory holding a loaded package's source files.
// Generated artifacts for the package land here.
func Dir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return ""
}

// Find returns the loaded package with the given import path, or nil.
func (s *Snapshot) Find(pkgPath string) *packages.Package {
	for _, pkg := range s.Packages {
		if pkg.PkgPath == pkgPath {
			return pkg
		}
	}
	return nil
}
