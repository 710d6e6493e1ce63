package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/flagen/flagen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
	}
}

// ReportError provides comprehensive error reporting with user-friendly output.
// A MultipleErrors collection is reported failure by failure, so every failed
// marker of a pass is visible, not just the first.
func (r *DiagnosticReporter) ReportError(err error) {
	if multi, ok := err.(*errors.MultipleErrors); ok {
		r.reportFailures(multi)
		return
	}

	fmt.Fprintf(os.Stderr, "\nERROR: Generation Failed\n")
	fmt.Fprintf(os.Stderr, "========================\n\n")

	if flagenErr := findFlagenError(err); flagenErr != nil {
		r.reportFlagenError(flagenErr)
	} else {
		fmt.Fprintf(os.Stderr, "Message: %s\n", err.Error())
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// reportFailures reports every failure of a pass
func (r *DiagnosticReporter) reportFailures(multi *errors.MultipleErrors) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "\n%d failure(s) in this pass\n", multi.Count())
	fmt.Fprintf(os.Stderr, "==========================\n\n")

	for i, failure := range multi.Errors {
		if multi.Count() > 1 {
			fmt.Fprintf(os.Stderr, "--- failure %d of %d ---\n", i+1, multi.Count())
		}
		r.reportFlagenError(failure)
		fmt.Fprintf(os.Stderr, "\n")
	}
}

// reportFlagenError reports one error with full context and suggestions
func (r *DiagnosticReporter) reportFlagenError(flagenErr errors.FlagenError) {
	r.printErrorHeader(flagenErr.ErrorCode())

	fmt.Fprintf(os.Stderr, "Message: %s\n\n", flagenErr.Error())

	// In verbose mode, show the underlying cause if available
	if r.verbose && flagenErr.Unwrap() != nil {
		fmt.Fprintf(os.Stderr, "Underlying cause: %s\n\n", flagenErr.Unwrap().Error())
	}

	if loc := flagenErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Location: %s\n\n", loc.String())
	}

	if context := flagenErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := flagenErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}
}

// printErrorHeader prints a formatted error header based on the error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var heading string

	switch code {
	case errors.SyntaxErrorCode:
		heading = "Directive Syntax Error"
	case errors.ValidationErrorCode:
		heading = "Directive Validation Error"
	case errors.ResolutionErrorCode:
		heading = "Resolution Error"
	case errors.CollisionErrorCode:
		heading = "Name Collision Error"
	case errors.CapacityErrorCode:
		heading = "Capacity Error"
	case errors.GenerationErrorCode:
		heading = "Code Generation Error"
	case errors.TemplateErrorCode:
		heading = "Template Error"
	case errors.FileSystemErrorCode:
		heading = "File System Error"
	case errors.ConfigurationErrorCode:
		heading = "Configuration Error"
	default:
		heading = "Unknown Error"
	}

	fmt.Fprintf(os.Stderr, "Type: %s\n", heading)
	fmt.Fprintf(os.Stderr, "%s\n\n", strings.Repeat("-", len(heading)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]any) {
	fmt.Fprintf(os.Stderr, "Context:\n")

	// Print important context items first
	importantKeys := []string{"enumeration", "marker", "implementer", "identifier", "package", "path"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	// Print remaining context items
	for key, value := range context {
		if !printed[key] {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "enumeration":
		return "Enumeration"
	case "marker":
		return "Marker"
	case "implementer":
		return "Implementer"
	case "identifier":
		return "Identifier"
	case "marker_package":
		return "Marker Package"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(os.Stderr, "Suggestions:\n")

	for i, suggestion := range suggestions {
		fmt.Fprintf(os.Stderr, "   %d. %s\n", i+1, suggestion)
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// findFlagenError walks the unwrap chain looking for a FlagenError
func findFlagenError(err error) errors.FlagenError {
	for err != nil {
		if flagenErr, ok := err.(errors.FlagenError); ok {
			return flagenErr
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}

// ReportSuccess reports a completed pass with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Printf("\nGeneration Completed Successfully\n")
	fmt.Printf("=================================\n\n")

	if r.verbose && summary.PassID != "" {
		fmt.Printf("Pass: %s\n", summary.PassID)
	}

	fmt.Printf("Processed %d packages\n", summary.PackagesLoaded)
	fmt.Printf("Found %d marker interfaces\n", summary.MarkersFound)

	if summary.ImplementersResolved > 0 {
		fmt.Printf("Resolved %d implementers\n", summary.ImplementersResolved)
	}

	if summary.CheckMode {
		fmt.Printf("Checked %d generated files, all current\n", summary.FilesChecked)
	} else if summary.ArtifactsWritten > 0 {
		fmt.Printf("Wrote %d generated files\n", summary.ArtifactsWritten)
	}

	if !summary.CheckMode && len(summary.GeneratedFiles) > 0 {
		fmt.Printf("\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Printf("  - %s\n", file)
		}
	}

	if r.verbose {
		fmt.Printf("\nCompleted in %v\n", summary.Duration.Round(time.Millisecond))
	}
}

// GenerationSummary contains information about one generation pass
type GenerationSummary struct {
	PassID               string
	PackagesLoaded       int
	MarkersFound         int
	ImplementersResolved int
	ArtifactsWritten     int
	FilesChecked         int
	Failures             int
	CheckMode            bool
	GeneratedFiles       []string
	StaleFiles           []string
	Duration             time.Duration
}
