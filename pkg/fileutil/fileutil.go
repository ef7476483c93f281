// Package fileutil provides utility functions for working with file paths and
// file operations, including the repository-root file access used by the
// validation engine.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyora-dev/agentos-check/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Root provides path existence checks and text reads relative to a fixed
// base directory. Declared artifact paths are always repository-relative, so
// every consumer resolves through a Root rather than touching the filesystem
// directly.
type Root struct {
	base string
}

// NewRoot creates a Root anchored at the given base directory.
func NewRoot(base string) *Root {
	return &Root{base: filepath.Clean(base)}
}

// Base returns the base directory the Root resolves against.
func (r *Root) Base() string {
	return r.base
}

// Resolve returns the absolute path for a repository-relative path.
func (r *Root) Resolve(rel string) string {
	return filepath.Join(r.base, filepath.FromSlash(rel))
}

// Exists reports whether the repository-relative path exists.
// Directories count: a skill bundle root may be declared as a directory.
func (r *Root) Exists(rel string) bool {
	_, err := os.Stat(r.Resolve(rel))
	return err == nil
}

// ReadFile reads the full text of a repository-relative path.
// A failed read is returned as an error so callers can report the file as
// unreadable rather than missing.
func (r *Root) ReadFile(rel string) (string, error) {
	full := r.Resolve(rel)
	log.Printf("Reading file: %s", full)
	content, err := os.ReadFile(full)
	if err != nil {
		log.Printf("Failed to read file: %v", err)
		return "", fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return string(content), nil
}
