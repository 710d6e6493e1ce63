package cli

import (
	"os"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/utils"
)

// ModuleResolver determines the module identity of the scanned tree
type ModuleResolver struct {
	parser *utils.GoModParser
	dir    string
}

// NewModuleResolver creates a resolver rooted at dir; empty means the
// working directory
func NewModuleResolver(dir string) *ModuleResolver {
	return &ModuleResolver{
		parser: utils.NewGoModParser(),
		dir:    dir,
	}
}

// ResolveModuleName resolves the module path of the scanned tree.
// If customModule is provided, it uses that; otherwise it walks up from the
// resolver's directory to the nearest go.mod.
func (r *ModuleResolver) ResolveModuleName(customModule string) (string, error) {
	if customModule != "" {
		return customModule, nil
	}

	dir := r.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.NewModuleResolutionError(dir, err)
		}
		dir = cwd
	}

	goModPath, err := r.parser.FindGoModFile(dir)
	if err != nil {
		return "", errors.NewModuleResolutionError(dir, err)
	}

	moduleName, err := r.parser.ParseModuleName(goModPath)
	if err != nil {
		return "", errors.NewModuleResolutionError(dir, err)
	}

	return moduleName, nil
}
