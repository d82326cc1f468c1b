package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tutsync/internal/ports"
)

// Workspace implements ports.Workspace over a read-write directory of
// working documents.
type Workspace struct {
	dir     string
	pattern string
}

// Ensure Workspace implements the port
var _ ports.Workspace = (*Workspace)(nil)

// NewWorkspace creates a workspace rooted at dir
func NewWorkspace(dir, pattern string) *Workspace {
	return &Workspace{
		dir:     expandHome(dir),
		pattern: pattern,
	}
}

// List returns the basenames of all workspace documents, sorted and deduplicated
func (w *Workspace) List() ([]string, error) {
	return listBasenames(w.dir, w.pattern)
}

// Write creates or overwrites a document with the given content. The
// write goes through a temp file in the same directory and an atomic
// rename, so an interrupted copy never leaves a truncated document.
func (w *Workspace) Write(name string, content io.Reader) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, ".tutsync-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}() // cleanup on error

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, w.Path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// Remove deletes a document from the workspace
func (w *Workspace) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(w.Path(name)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Path returns the absolute path of a document within the workspace
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}
