// Package resolver finds the concrete types whose method sets satisfy a
// marker interface.
//
// Membership is decided by types.Implements on symbol identity, never by
// name equality, so two same-named interfaces from different packages keep
// distinct implementer sets.
package resolver

import (
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/loader"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/utils"
)

// candidate is one named type eligible for membership tests.
type candidate struct {
	named *types.Named
	class models.ImplementingClass
}

// Resolver tests the snapshot's named types against marker interfaces. The
// candidate index and the method set cache are built once and shared by
// every marker of the pass.
type Resolver struct {
	snapshot   *loader.Snapshot
	diag       *utils.DiagnosticSystem
	cache      typeutil.MethodSetCache
	candidates []candidate
}

// New creates a Resolver bound to one snapshot and indexes its named types.
// Interfaces, aliases, generic declarations, and types declared in flagen's
// own artifact files never enter the index.
func New(snapshot *loader.Snapshot, diag *utils.DiagnosticSystem) *Resolver {
	r := &Resolver{snapshot: snapshot, diag: diag}
	for _, pkg := range snapshot.Packages {
		r.indexPackage(pkg)
	}
	return r
}

func (r *Resolver) indexPackage(pkg *packages.Package) {
	if pkg.Types == nil {
		return
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			// Aliases share their target's identity; the target is indexed
			// under its own name.
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		if types.IsInterface(named) {
			continue
		}

		pos := r.snapshot.Fset.Position(tn.Pos())
		if models.IsArtifactFile(filepath.Base(pos.Filename)) {
			// Never feed a previous pass's output back in as input.
			continue
		}

		if named.TypeParams().Len() > 0 {
			r.diag.Warn("%s:%d: generic type %s.%s cannot carry a flag, skipping", pos.Filename, pos.Line, pkg.PkgPath, name)
			continue
		}

		r.candidates = append(r.candidates, candidate{
			named: named,
			class: models.ImplementingClass{
				Name:    name,
				PkgPath: pkg.PkgPath,
				PkgName: pkg.Name,
				File:    pos.Filename,
				Line:    pos.Line,
			},
		})
	}
}

// Resolve returns every indexed type whose value or pointer method set
// satisfies the marker, deduplicated and sorted by qualified name.
//
// An unexported implementer outside the marker's package is fatal to the
// marker: the generated artifact could not reference it. Excluded types are
// skipped silently. A marker with zero implementers is a valid, empty result.
func (r *Resolver) Resolve(marker models.MarkerInterface, exclusions map[string]bool) ([]models.ImplementingClass, error) {
	iface, err := r.markerInterface(marker)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var classes []models.ImplementingClass

	for _, cand := range r.candidates {
		fqn := cand.class.FQN()
		if exclusions[fqn] || seen[fqn] {
			continue
		}

		// The pointer method set is a superset of the value set; if it is
		// too small the type cannot implement the marker either way.
		if r.cache.MethodSet(types.NewPointer(cand.named)).Len() < iface.NumMethods() {
			continue
		}

		requiresPointer := false
		if !types.Implements(cand.named, iface) {
			if !types.Implements(types.NewPointer(cand.named), iface) {
				continue
			}
			requiresPointer = true
		}

		if !token.IsExported(cand.class.Name) && cand.class.PkgPath != marker.PkgPath {
			return nil, errors.NewUnexportedImplementerError(marker.FQN(), fqn, marker.PkgPath)
		}

		seen[fqn] = true
		class := cand.class
		class.RequiresPointer = requiresPointer
		classes = append(classes, class)
	}

	sort.Slice(classes, func(i, j int) bool {
		return classes[i].FQN() < classes[j].FQN()
	})

	r.diag.Verbose("Marker %s has %d implementers", marker.FQN(), len(classes))
	return classes, nil
}

// markerInterface looks the marker up in the snapshot's type information.
func (r *Resolver) markerInterface(marker models.MarkerInterface) (*types.Interface, error) {
	pkg := r.snapshot.Find(marker.PkgPath)
	if pkg == nil || pkg.Types == nil {
		return nil, errors.Newf(errors.ResolutionErrorCode, "package %s for marker %s is not in the snapshot", marker.PkgPath, marker.Name)
	}

	obj := pkg.Types.Scope().Lookup(marker.Name)
	if obj == nil {
		return nil, errors.Newf(errors.ResolutionErrorCode, "marker %s is not declared in %s", marker.Name, marker.PkgPath)
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, errors.Newf(errors.ResolutionErrorCode, "marker %s is not an interface type", marker.FQN())
	}

	return iface, nil
}
