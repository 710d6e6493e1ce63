package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/utils"
)

// Cleaner removes flagen-owned artifacts. A file is deleted only when its
// name carries the artifact prefix AND its content starts with the generated
// header; a hand-written file that happens to match the name pattern is left
// alone with a warning.
type Cleaner struct {
	diag *utils.DiagnosticSystem
}

// NewCleaner creates a new cleaner
func NewCleaner(diag *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{diag: diag}
}

// Clean removes generated artifacts under the given patterns and returns the
// removed paths. Patterns accept the Go-style ./... recursive form.
func (c *Cleaner) Clean(patterns []string) ([]string, error) {
	var removed []string

	for _, pattern := range patterns {
		baseDir, recursive := splitPattern(pattern)
		if err := c.cleanDir(baseDir, recursive, &removed); err != nil {
			return removed, err
		}
	}

	return removed, nil
}

// splitPattern turns a package pattern into a filesystem base directory and
// a recursion flag
func splitPattern(pattern string) (string, bool) {
	if strings.HasSuffix(pattern, "/...") {
		base := strings.TrimSuffix(pattern, "/...")
		if base == "" {
			base = "."
		}
		return base, true
	}
	if pattern == "..." {
		return ".", true
	}
	return pattern, false
}

// cleanDir cleans one directory, recursing when requested. Hidden and vendor
// directories are never entered.
func (c *Cleaner) cleanDir(dir string, recursive bool, removed *[]string) error {
	if !recursive {
		return c.cleanSingleDirectory(dir, removed)
	}

	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			return nil
		}
		if entry.IsDir() {
			name := entry.Name()
			if path != dir && (name == "vendor" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if models.IsArtifactFile(entry.Name()) {
			return c.removeArtifact(path, removed)
		}
		return nil
	})
}

// cleanSingleDirectory cleans a single directory without recursion
func (c *Cleaner) cleanSingleDirectory(dir string, removed *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !models.IsArtifactFile(entry.Name()) {
			continue
		}
		if err := c.removeArtifact(filepath.Join(dir, entry.Name()), removed); err != nil {
			return err
		}
	}

	return nil
}

// removeArtifact deletes one artifact after verifying the generated header
func (c *Cleaner) removeArtifact(path string, removed *[]string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.NewFileWriteError(path, err)
	}

	if !strings.HasPrefix(string(content), models.GeneratedHeader) {
		c.diag.Warn("skipping %s: file does not carry the generated header", path)
		return nil
	}

	if err := os.Remove(path); err != nil {
		return errors.NewFileWriteError(path, err)
	}

	*removed = append(*removed, path)
	c.diag.Verbose("removed %s", path)
	return nil
}
