// Package synthesizer turns resolved markers into generated source artifacts.
// Planning (BuildEnumerationSpec) and rendering (Synthesize, MarkerDoc) are
// separate steps so planning faults surface before any file content exists.
package synthesizer

import (
	"path/filepath"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/templates"
	"github.com/flagen/flagen/internal/utils"
)

// Synthesizer renders enumeration and marker-documentation artifacts. It is
// stateless and safe for concurrent use; each Synthesize call plans and
// renders exactly one marker.
type Synthesizer struct {
	diag *utils.DiagnosticSystem
}

// New creates a Synthesizer reporting through the given diagnostics.
func New(diag *utils.DiagnosticSystem) *Synthesizer {
	return &Synthesizer{diag: diag}
}

// Synthesize plans and renders the enumeration artifact for one marker and
// its implementers. Planning faults (name collisions, capacity) abort this
// marker only.
func (s *Synthesizer) Synthesize(marker models.MarkerInterface, classes []models.ImplementingClass) (*models.GeneratedArtifact, error) {
	spec, err := BuildEnumerationSpec(marker, classes)
	if err != nil {
		return nil, err
	}
	s.diag.Verbose("planned %s: %d flags, full mask %#x", spec.EnumName, spec.Size(), spec.Full)
	return s.Render(spec)
}

// Render renders a planned enumeration spec into its artifact. The content is
// gofmt-formatted; a formatting failure means the rendered source is invalid
// and is reported as a generation fault.
func (s *Synthesizer) Render(spec *models.EnumerationSpec) (*models.GeneratedArtifact, error) {
	content, err := templates.GenerateEnumerationFile(*spec)
	if err != nil {
		return nil, err
	}

	formatted, err := utils.FormatGoCodeString(content)
	if err != nil {
		return nil, errors.Wrapf(errors.GenerationErrorCode, err, "rendered source for %s is not valid Go", spec.EnumName).
			WithContext("enumeration", spec.EnumName).
			WithContext("package", spec.PkgPath)
	}

	fileName := templates.DefaultTemplateUtils.BuildArtifactFileName(spec.EnumName)
	return &models.GeneratedArtifact{
		PackageName: spec.PkgName,
		PackagePath: spec.PkgPath,
		FilePath:    filepath.Join(spec.Dir, fileName),
		Content:     formatted,
		EnumName:    spec.EnumName,
	}, nil
}

// MarkerDoc renders the per-package directive documentation artifact for the
// package at dir. Its content depends only on the package name, so rerunning
// the pass rewrites an identical file.
func (s *Synthesizer) MarkerDoc(pkgName, pkgPath, dir string) (*models.GeneratedArtifact, error) {
	content, err := templates.GenerateMarkerDocFile(pkgName)
	if err != nil {
		return nil, err
	}

	formatted, err := utils.FormatGoCodeString(content)
	if err != nil {
		return nil, errors.Wrapf(errors.GenerationErrorCode, err, "rendered marker documentation for %s is not valid Go", pkgName).
			WithContext("package", pkgPath)
	}

	return &models.GeneratedArtifact{
		PackageName: pkgName,
		PackagePath: pkgPath,
		FilePath:    filepath.Join(dir, models.MarkerDocFile),
		Content:     formatted,
	}, nil
}
