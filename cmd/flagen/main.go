package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/flagen/flagen/internal/cli"
	"github.com/flagen/flagen/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		moduleFlag  = flag.String("module", "", "Module path of the scanned tree (defaults to go.mod module)")
		configFlag  = flag.String("config", "", "Config file path (defaults to the nearest .flagen.toml)")
		excludeFlag = flag.String("exclude", "", "Comma-separated fully qualified type names to exclude from every enumeration")
		checkFlag   = flag.Bool("check", false, "Verify generated files are current; write nothing")
		cleanFlag   = flag.Bool("clean", false, "Delete all flagen-generated autogen_*.go files under the patterns")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and the final result")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	flagConfig := cli.Config{
		Patterns: flag.Args(),
		Module:   *moduleFlag,
		Exclude:  splitExcludes(*excludeFlag),
		Check:    *checkFlag,
		Verbose:  *verboseFlag,
		Quiet:    *quietFlag,
	}

	fileConfig, err := cli.LoadConfigFile(*configFlag, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := fileConfig.MergeFlags(flagConfig)
	config.ApplyDefaults()

	diagnostics := utils.NewDiagnosticSystem(config.Level())

	// Handle clean operation
	if *cleanFlag {
		cleaner := cli.NewCleaner(diagnostics)
		removed, err := cleaner.Clean(config.Patterns)
		if err != nil {
			diagnostics.Error("Clean failed: %v", err)
			os.Exit(1)
		}
		diagnostics.Success("Removed %d generated file(s)", len(removed))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := cli.NewGenerator(diagnostics, config.Verbose)
	if err := generator.Run(ctx, config); err != nil {
		generator.Reporter().ReportError(err)
		os.Exit(1)
	}

	if !config.Quiet {
		generator.Reporter().ReportSuccess(generator.GetSummary())
	}
}

// splitExcludes turns the comma-separated --exclude value into a list
func splitExcludes(value string) []string {
	if value == "" {
		return nil
	}
	var excludes []string
	for _, fqn := range strings.Split(value, ",") {
		if fqn = strings.TrimSpace(fqn); fqn != "" {
			excludes = append(excludes, fqn)
		}
	}
	return excludes
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] [package-patterns...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Flagen Class Enumeration Generator\n")
	fmt.Fprintf(os.Stderr, "Scans Go packages for interfaces marked with //flagen::marker and generates a\n")
	fmt.Fprintf(os.Stderr, "closed bitmask enumeration over the concrete types implementing each marker.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nArguments:\n")
	fmt.Fprintf(os.Stderr, "  package-patterns   Go package patterns to scan (default ./...)\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan the whole module\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s ./internal/...                         # Scan one subtree\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s --check ./...                          # CI freshness gate\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s --clean ./...                          # Remove generated files\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s --exclude example.com/app/game.Debug   # Drop one implementer\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s --module example.com/app ./...         # Explicit module path\n", os.Args[0])
}
