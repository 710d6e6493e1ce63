package templates

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// ImportManager handles import generation, deduplication, and qualifier
// conflict resolution for one generated artifact
type ImportManager struct {
	selfPath string            // package the artifact lands in; never imported
	plain    map[string]bool   // unaliased import paths
	aliased  map[string]string // alias -> import path
	byPath   map[string]string // import path -> qualifier
	taken    map[string]bool   // qualifiers already claimed
}

// NewImportManager creates an import manager for an artifact generated into
// the package at selfPath
func NewImportManager(selfPath string) *ImportManager {
	return &ImportManager{
		selfPath: selfPath,
		plain:    make(map[string]bool),
		aliased:  make(map[string]string),
		byPath:   make(map[string]string),
		taken:    make(map[string]bool),
	}
}

// AddImport adds an unaliased import. The path's last element is reserved as
// its qualifier.
func (im *ImportManager) AddImport(importPath string) {
	if importPath == "" || im.plain[importPath] {
		return
	}
	im.plain[importPath] = true
	qualifier := path.Base(importPath)
	im.byPath[importPath] = qualifier
	im.taken[qualifier] = true
}

// EnsurePackage returns the qualifier generated code uses to reference types
// from the package at importPath, registering the import on first use. The
// declared package name is preferred; a numeric suffix resolves collisions
// between distinct packages sharing a name. The artifact's own package needs
// no qualifier and yields "".
func (im *ImportManager) EnsurePackage(importPath, packageName string) string {
	if importPath == "" || importPath == im.selfPath {
		return ""
	}
	if qualifier, ok := im.byPath[importPath]; ok {
		return qualifier
	}

	qualifier := packageName
	for i := 2; im.taken[qualifier]; i++ {
		qualifier = fmt.Sprintf("%s%d", packageName, i)
	}
	im.taken[qualifier] = true
	im.byPath[importPath] = qualifier

	// A plain import binds to the declared package name, so an alias is only
	// needed when the chosen qualifier differs from it.
	if qualifier == packageName {
		im.plain[importPath] = true
	} else {
		im.aliased[qualifier] = importPath
	}
	return qualifier
}

// GenerateImports generates the import section
func (im *ImportManager) GenerateImports() string {
	if len(im.plain) == 0 && len(im.aliased) == 0 {
		return ""
	}

	var imports []string

	var plainPaths []string
	for importPath := range im.plain {
		plainPaths = append(plainPaths, importPath)
	}
	sort.Strings(plainPaths)
	for _, importPath := range plainPaths {
		imports = append(imports, fmt.Sprintf("%q", importPath))
	}

	var aliases []string
	for alias := range im.aliased {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		imports = append(imports, fmt.Sprintf("%s %q", alias, im.aliased[alias]))
	}

	if len(imports) == 1 {
		return fmt.Sprintf("import %s\n", imports[0])
	}

	var result strings.Builder
	result.WriteString("import (\n")
	for _, imp := range imports {
		result.WriteString(fmt.Sprintf("\t%s\n", imp))
	}
	result.WriteString(")\n")

	return result.String()
}
