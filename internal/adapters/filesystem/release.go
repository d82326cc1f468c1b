package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tutsync/internal/domain"
	"tutsync/internal/ports"
)

// ReleaseStore implements ports.ReleaseStore over a read-only directory
// of released documents.
type ReleaseStore struct {
	dir         string
	pattern     string
	versionFile string
}

// Ensure ReleaseStore implements the port
var _ ports.ReleaseStore = (*ReleaseStore)(nil)

// NewReleaseStore creates a release store rooted at dir. pattern is the
// glob matching document basenames (e.g. "*.ipynb"); versionFile is the
// basename of the version marker inside the store.
func NewReleaseStore(dir, pattern, versionFile string) *ReleaseStore {
	return &ReleaseStore{
		dir:         expandHome(dir),
		pattern:     pattern,
		versionFile: versionFile,
	}
}

// List returns the basenames of all released documents, sorted and deduplicated
func (s *ReleaseStore) List() ([]string, error) {
	return listBasenames(s.dir, s.pattern)
}

// Open opens a released document for reading
func (s *ReleaseStore) Open(name string) (io.ReadCloser, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open released document %s: %w", name, err)
	}
	return f, nil
}

// Version reads the version marker and returns the short release token
func (s *ReleaseStore) Version() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, s.versionFile))
	if err != nil {
		return "", fmt.Errorf("failed to read version marker: %w", err)
	}
	return domain.ParseVersionToken(string(data)), nil
}

// listBasenames globs pattern under dir and returns sorted, deduplicated
// basenames. Directories matching the pattern are skipped.
func listBasenames(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		name := filepath.Base(match)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// validateName rejects identifiers that are not plain basenames, so a
// crafted name cannot escape the store directory.
func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid document name: %q", name)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
