// Package scanner discovers flagen directives in loaded package snapshots.
//
// A directive is a doc-comment line of the form //flagen::<directive> attached
// to a type declaration. The scanner is fail-open: a directive that cannot be
// parsed, fails validation, or sits on an unsupported declaration produces a
// warning and is skipped, never a failed pass.
package scanner

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/flagen/flagen/internal/annotations"
	"github.com/flagen/flagen/internal/loader"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/utils"
)

// Result holds everything one scan pass discovered.
type Result struct {
	// Markers lists every interface carrying a flagen::marker directive,
	// sorted by qualified name.
	Markers []models.MarkerInterface

	// Exclusions records qualified names of types carrying flagen::exclude.
	Exclusions map[string]bool
}

// IsExcluded reports whether the qualified type name opted out of membership.
func (r *Result) IsExcluded(fqn string) bool {
	return r.Exclusions[fqn]
}

// Scanner walks package syntax trees looking for flagen directives.
type Scanner struct {
	parser annotations.ParserEngine
	diag   *utils.DiagnosticSystem
}

// New creates a Scanner backed by the default annotation registry.
func New(diag *utils.DiagnosticSystem) *Scanner {
	return &Scanner{
		parser: annotations.NewParticipleParser(annotations.DefaultRegistry()),
		diag:   diag,
	}
}

// NewWithParser creates a Scanner using a custom parser engine.
func NewWithParser(parser annotations.ParserEngine, diag *utils.DiagnosticSystem) *Scanner {
	return &Scanner{parser: parser, diag: diag}
}

// Scan extracts directives from every package in the snapshot. Files owned by
// flagen itself (autogen_*.go) are never scanned, so a pass cannot pick up the
// previous pass's output as input.
func (s *Scanner) Scan(snapshot *loader.Snapshot) *Result {
	result := &Result{Exclusions: make(map[string]bool)}
	seen := make(map[string]bool)

	for _, pkg := range snapshot.Packages {
		s.scanPackage(snapshot.Fset, pkg, result, seen)
	}

	sort.Slice(result.Markers, func(i, j int) bool {
		return result.Markers[i].FQN() < result.Markers[j].FQN()
	})

	return result
}

func (s *Scanner) scanPackage(fset *token.FileSet, pkg *packages.Package, result *Result, seen map[string]bool) {
	dir := loader.Dir(pkg)

	for _, file := range pkg.Syntax {
		filename := fset.Position(file.Pos()).Filename
		if models.IsArtifactFile(filepath.Base(filename)) {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			genDecl, ok := n.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				return true
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				for _, comment := range docComments(genDecl, typeSpec) {
					s.applyComment(fset, pkg, dir, typeSpec, comment, result, seen)
				}
			}

			return true
		})
	}
}

// docComments collects the doc lines for one type spec. Ungrouped declarations
// hang the doc on the GenDecl, grouped ones on the TypeSpec itself.
func docComments(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) []*ast.Comment {
	var list []*ast.Comment
	if genDecl.Doc != nil && len(genDecl.Specs) == 1 {
		list = append(list, genDecl.Doc.List...)
	}
	if typeSpec.Doc != nil {
		list = append(list, typeSpec.Doc.List...)
	}
	return list
}

func (s *Scanner) applyComment(fset *token.FileSet, pkg *packages.Package, dir string, typeSpec *ast.TypeSpec, comment *ast.Comment, result *Result, seen map[string]bool) {
	if !annotations.IsAnnotation(comment.Text) {
		return
	}

	pos := fset.Position(comment.Pos())
	location := annotations.SourceLocation{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
	}

	parsed, err := s.parser.ParseAnnotation(comment.Text, location)
	if err != nil {
		s.diag.Warn("skipping directive: %v", err)
		return
	}

	switch parsed.Type {
	case annotations.MarkerAnnotation:
		s.addMarker(fset, pkg, dir, typeSpec, parsed, result, seen)
	case annotations.ExcludeAnnotation:
		s.addExclusion(pkg, typeSpec, result)
	}
}

func (s *Scanner) addMarker(fset *token.FileSet, pkg *packages.Package, dir string, typeSpec *ast.TypeSpec, parsed *annotations.ParsedAnnotation, result *Result, seen map[string]bool) {
	name := typeSpec.Name.Name
	pos := fset.Position(typeSpec.Pos())

	if pkg.Types == nil || pkg.TypesInfo == nil {
		s.diag.Warn("%s:%d: no type information for %s, skipping marker", pos.Filename, pos.Line, name)
		return
	}

	obj, ok := pkg.TypesInfo.Defs[typeSpec.Name].(*types.TypeName)
	if !ok {
		s.diag.Warn("%s:%d: %s does not resolve to a defined type, skipping marker", pos.Filename, pos.Line, name)
		return
	}
	if !types.IsInterface(obj.Type()) {
		s.diag.Warn("%s:%d: flagen::marker requires an interface declaration, %s is not one", pos.Filename, pos.Line, name)
		return
	}
	if typeSpec.TypeParams != nil {
		s.diag.Warn("%s:%d: generic interface %s cannot be a marker, skipping", pos.Filename, pos.Line, name)
		return
	}
	if obj.Parent() != pkg.Types.Scope() {
		s.diag.Warn("%s:%d: marker interface %s must be declared at package level, skipping", pos.Filename, pos.Line, name)
		return
	}

	marker := models.MarkerInterface{
		Name:       name,
		PkgPath:    pkg.PkgPath,
		PkgName:    pkg.Name,
		Dir:        dir,
		File:       pos.Filename,
		Line:       pos.Line,
		Annotation: parsed,
	}

	if seen[marker.FQN()] {
		s.diag.Warn("%s:%d: duplicate flagen::marker on %s, keeping the first", pos.Filename, pos.Line, marker.FQN())
		return
	}
	seen[marker.FQN()] = true

	result.Markers = append(result.Markers, marker)
	s.diag.Verbose("Found marker interface %s", marker.FQN())
}

func (s *Scanner) addExclusion(pkg *packages.Package, typeSpec *ast.TypeSpec, result *Result) {
	fqn := pkg.PkgPath + "." + typeSpec.Name.Name
	if !result.Exclusions[fqn] {
		s.diag.Verbose("Excluding %s from enumeration membership", fqn)
	}
	result.Exclusions[fqn] = true
}
