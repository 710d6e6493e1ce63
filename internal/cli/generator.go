package cli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/loader"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/resolver"
	"github.com/flagen/flagen/internal/scanner"
	"github.com/flagen/flagen/internal/synthesizer"
	"github.com/flagen/flagen/internal/utils"
)

// Generator coordinates one generation pass end to end: load, scan, resolve,
// synthesize, write. Marker failures are isolated; the pass continues past a
// failed marker and reports everything at the end.
type Generator struct {
	moduleResolver *ModuleResolver
	synth          *synthesizer.Synthesizer
	diag           *utils.DiagnosticSystem
	reporter       *DiagnosticReporter
	summary        GenerationSummary
}

// NewGenerator creates a CLI generator reporting through the given diagnostics
func NewGenerator(diag *utils.DiagnosticSystem, verbose bool) *Generator {
	return &Generator{
		moduleResolver: NewModuleResolver(""),
		synth:          synthesizer.New(diag),
		diag:           diag,
		reporter:       NewDiagnosticReporter(verbose),
	}
}

// GetSummary returns the summary of the last pass
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Reporter returns the pass reporter for final output
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// markerResult is one marker's outcome. Each slot is written only by the
// goroutine that owns it.
type markerResult struct {
	marker       models.MarkerInterface
	artifact     *models.GeneratedArtifact
	implementers int
	err          error
}

// Run executes one complete generation pass
func (g *Generator) Run(ctx context.Context, config Config) error {
	start := time.Now()
	config.ApplyDefaults()

	g.summary = GenerationSummary{
		PassID:    uuid.NewString(),
		CheckMode: config.Check,
	}
	g.diag.Verbose("pass %s starting", g.summary.PassID)

	moduleResolver := g.moduleResolver
	if config.Dir != "" {
		moduleResolver = NewModuleResolver(config.Dir)
	}
	moduleName, err := moduleResolver.ResolveModuleName(config.Module)
	if err != nil {
		return err
	}
	g.diag.Verbose("module %s", moduleName)

	snapshot, err := loader.Load(ctx, loader.Options{Dir: config.Dir, Patterns: config.Patterns}, g.diag)
	if err != nil {
		return err
	}
	g.summary.PackagesLoaded = len(snapshot.Packages)

	scan := scanner.New(g.diag).Scan(snapshot)
	g.summary.MarkersFound = len(scan.Markers)
	if len(scan.Markers) == 0 {
		g.diag.Info("no marker interfaces found under %v", config.Patterns)
		g.summary.Duration = time.Since(start)
		return nil
	}
	g.diag.Info("found %d marker interface(s)", len(scan.Markers))

	exclusions := mergeExclusions(scan.Exclusions, config.Exclude)
	results := g.processMarkers(ctx, snapshot, scan.Markers, exclusions)
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.UnknownErrorCode, "generation pass canceled", err)
	}

	failures := errors.NewMultipleErrors()
	identity := utils.NewBaseRegistry[string, string]("artifact identity", "artifact file", "owning marker")
	identity.SetValidator(utils.NoDuplicateValidator[string, string]("artifact file"))

	artifacts := g.collectArtifacts(results, identity, failures)
	artifacts = append(artifacts, g.markerDocArtifacts(artifacts, identity, failures)...)

	if config.Check {
		g.checkArtifacts(artifacts, failures)
	} else {
		g.writeArtifacts(artifacts, failures)
	}

	g.summary.Failures = failures.Count()
	g.summary.Duration = time.Since(start)

	if !failures.IsEmpty() {
		return failures
	}
	return nil
}

// processMarkers resolves and synthesizes every marker concurrently. Each
// marker writes only its own result slot; a failure never aborts the others.
func (g *Generator) processMarkers(ctx context.Context, snapshot *loader.Snapshot, markers []models.MarkerInterface, exclusions map[string]bool) []markerResult {
	res := resolver.New(snapshot, g.diag)
	results := make([]markerResult, len(markers))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, marker := range markers {
		i, marker := i, marker
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = g.processMarker(res, marker, exclusions)
			return nil
		})
	}

	// Workers only return context errors; marker failures live in the slots.
	_ = group.Wait()
	return results
}

// processMarker runs resolution and synthesis for a single marker
func (g *Generator) processMarker(res *resolver.Resolver, marker models.MarkerInterface, exclusions map[string]bool) markerResult {
	classes, err := res.Resolve(marker, exclusions)
	if err != nil {
		return markerResult{marker: marker, err: err}
	}
	g.diag.Verbose("marker %s: %d implementer(s)", marker.FQN(), len(classes))

	artifact, err := g.synth.Synthesize(marker, classes)
	if err != nil {
		return markerResult{marker: marker, err: err}
	}

	return markerResult{marker: marker, artifact: artifact, implementers: len(classes)}
}

// collectArtifacts gathers successful artifacts in marker order and enforces
// the artifact identity registry: two markers may not own the same generated
// file, which -Name overrides could otherwise cause.
func (g *Generator) collectArtifacts(results []markerResult, identity *utils.BaseRegistry[string, string], failures *errors.MultipleErrors) []*models.GeneratedArtifact {
	var artifacts []*models.GeneratedArtifact
	for _, result := range results {
		if result.err != nil {
			g.diag.Error("marker %s failed: %v", result.marker.FQN(), result.err)
			failures.Add(asFlagenError(result.err))
			continue
		}

		if err := identity.Register(result.artifact.FilePath, result.marker.FQN()); err != nil {
			first, _ := identity.Get(result.artifact.FilePath)
			failures.Add(errors.NewArtifactConflictError(
				result.artifact.PackagePath, result.artifact.EnumName, first, result.marker.FQN()))
			continue
		}

		artifacts = append(artifacts, result.artifact)
		g.summary.ImplementersResolved += result.implementers
	}

	return artifacts
}

// markerDocArtifacts renders the per-package directive documentation for
// every package that produced at least one enumeration
func (g *Generator) markerDocArtifacts(artifacts []*models.GeneratedArtifact, identity *utils.BaseRegistry[string, string], failures *errors.MultipleErrors) []*models.GeneratedArtifact {
	var docs []*models.GeneratedArtifact
	seen := make(map[string]bool)

	for _, artifact := range artifacts {
		if seen[artifact.PackagePath] {
			continue
		}
		seen[artifact.PackagePath] = true

		doc, err := g.synth.MarkerDoc(artifact.PackageName, artifact.PackagePath, filepath.Dir(artifact.FilePath))
		if err != nil {
			failures.Add(asFlagenError(err))
			continue
		}

		// An enumeration named through -Name can claim autogen_marker.go first.
		if err := identity.Register(doc.FilePath, "marker documentation"); err != nil {
			first, _ := identity.Get(doc.FilePath)
			failures.Add(errors.NewArtifactConflictError(
				doc.PackagePath, "marker documentation", first, "marker documentation"))
			continue
		}

		docs = append(docs, doc)
	}

	return docs
}

// writeArtifacts persists every artifact sequentially
func (g *Generator) writeArtifacts(artifacts []*models.GeneratedArtifact, failures *errors.MultipleErrors) {
	for _, artifact := range artifacts {
		if err := os.WriteFile(artifact.FilePath, []byte(artifact.Content), 0644); err != nil {
			failures.Add(errors.NewFileWriteError(artifact.FilePath, err))
			continue
		}
		g.diag.Verbose("wrote %s", artifact.FilePath)
		g.summary.ArtifactsWritten++
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, artifact.FilePath)
	}
}

// checkArtifacts verifies that every artifact on disk matches what this pass
// would write. Nothing is written in check mode.
func (g *Generator) checkArtifacts(artifacts []*models.GeneratedArtifact, failures *errors.MultipleErrors) {
	for _, artifact := range artifacts {
		existing, err := os.ReadFile(artifact.FilePath)
		if err != nil || string(existing) != artifact.Content {
			failures.Add(errors.NewStaleArtifactError(artifact.FilePath))
			g.summary.StaleFiles = append(g.summary.StaleFiles, artifact.FilePath)
			continue
		}
		g.summary.FilesChecked++
	}
}

// mergeExclusions unions the directive-sourced exclusions with the configured
// ones
func mergeExclusions(fromScan map[string]bool, fromConfig []string) map[string]bool {
	merged := make(map[string]bool, len(fromScan)+len(fromConfig))
	for fqn := range fromScan {
		merged[fqn] = true
	}
	for _, fqn := range fromConfig {
		merged[fqn] = true
	}
	return merged
}

// asFlagenError coerces an error into a FlagenError, wrapping foreign errors
func asFlagenError(err error) errors.FlagenError {
	if flagenErr := findFlagenError(err); flagenErr != nil {
		return flagenErr
	}
	return errors.Wrap(errors.UnknownErrorCode, err.Error(), err)
}
