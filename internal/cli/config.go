package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/utils"
)

// ConfigFileName is the per-module configuration file, discovered by walking
// up from the working directory.
const ConfigFileName = ".flagen.toml"

// Config holds the settings of one generation pass
type Config struct {
	// Patterns is the list of package patterns to scan, defaults to ./...
	Patterns []string

	// Dir is the working directory for the load, empty means current
	Dir string

	// Module overrides module name resolution
	// If empty, will be determined from the nearest go.mod file
	Module string

	// Exclude lists fully qualified type names removed from every enumeration,
	// merged with //flagen::exclude directives found in source
	Exclude []string

	// Check verifies generated files are current instead of writing them
	Check bool

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet restricts output to errors and the final result
	Quiet bool
}

// ApplyDefaults fills unset fields with their defaults
func (c *Config) ApplyDefaults() {
	if len(c.Patterns) == 0 {
		c.Patterns = []string{"./..."}
	}
}

// Level returns the diagnostic level the config selects. Quiet wins when both
// quiet and verbose are set.
func (c *Config) Level() utils.DiagnosticLevel {
	switch {
	case c.Quiet:
		return utils.DiagnosticError
	case c.Verbose:
		return utils.DiagnosticVerbose
	default:
		return utils.DiagnosticInfo
	}
}

// MergeFlags overlays flag-provided values on top of c. Patterns, Dir, and
// Module replace the file values; Exclude lists are unioned; boolean flags
// set on the command line stick.
func (c Config) MergeFlags(flags Config) Config {
	merged := c
	if len(flags.Patterns) > 0 {
		merged.Patterns = flags.Patterns
	}
	if flags.Dir != "" {
		merged.Dir = flags.Dir
	}
	if flags.Module != "" {
		merged.Module = flags.Module
	}
	if len(flags.Exclude) > 0 {
		merged.Exclude = append(append([]string(nil), merged.Exclude...), flags.Exclude...)
	}
	if flags.Check {
		merged.Check = true
	}
	if flags.Verbose {
		merged.Verbose = true
	}
	if flags.Quiet {
		merged.Quiet = true
	}
	return merged
}

// LoadConfigFile reads configuration from path, or from the nearest
// .flagen.toml walking up from startDir when path is empty. A missing
// implicit file yields an empty config; an unreadable explicit one is an
// error.
func LoadConfigFile(path, startDir string) (*Config, error) {
	if path == "" {
		path = findConfigFile(startDir)
		if path == "" {
			return &Config{}, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(errors.ConfigurationErrorCode, err, "failed to read config file %s", path).
			WithContext("path", path).
			WithSuggestion("Check the TOML syntax of the config file")
	}

	return &Config{
		Patterns: v.GetStringSlice("patterns"),
		Module:   v.GetString("module"),
		Exclude:  v.GetStringSlice("exclude"),
		Verbose:  v.GetBool("verbose"),
		Quiet:    v.GetBool("quiet"),
	}, nil
}

// findConfigFile walks up from startDir looking for ConfigFileName.
// Returns the empty string when no config file exists.
func findConfigFile(startDir string) string {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root
			return ""
		}
		dir = parent
	}
}
