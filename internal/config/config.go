package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for a stock checkout: the released notebooks live next to the
// working copies, and the two maintenance notebooks are never synced.
const (
	DefaultReleaseDir   = "~/tutorials/release"
	DefaultWorkspaceDir = "~/tutorials"
	DefaultPattern      = "*.ipynb"
	DefaultVersionFile  = "VERSION"
)

// DefaultExclusions lists the bootstrap/maintenance documents that must
// never be touched by a sync, regardless of their presence in either store.
var DefaultExclusions = []string{"index.ipynb", "release.ipynb"}

// Config holds the synchronizer configuration
type Config struct {
	ReleaseDir   string   `yaml:"release_dir"`
	WorkspaceDir string   `yaml:"workspace_dir"`
	Pattern      string   `yaml:"pattern"`
	VersionFile  string   `yaml:"version_file"`
	JournalPath  string   `yaml:"journal_path"`
	Exclusions   []string `yaml:"exclusions"`
}

// ReleaseDirPath returns the release dir from TUTSYNC_RELEASE_DIR,
// falling back to DefaultReleaseDir.
func ReleaseDirPath() string {
	if env := os.Getenv("TUTSYNC_RELEASE_DIR"); env != "" {
		return env
	}
	return DefaultReleaseDir
}

// WorkspaceDirPath returns the workspace dir from TUTSYNC_WORKSPACE_DIR,
// falling back to DefaultWorkspaceDir.
func WorkspaceDirPath() string {
	if env := os.Getenv("TUTSYNC_WORKSPACE_DIR"); env != "" {
		return env
	}
	return DefaultWorkspaceDir
}

// DefaultJournalPath returns where the sync journal lives for a given
// workspace directory.
func DefaultJournalPath(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".tutsync", "journal.db")
}

// Default returns the configuration assembled from environment variables
// and built-in defaults, without reading a config file.
func Default() *Config {
	cfg := &Config{
		ReleaseDir:   ReleaseDirPath(),
		WorkspaceDir: WorkspaceDirPath(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML configuration file, then fills in defaults
// for anything the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ReleaseDir == "" {
		cfg.ReleaseDir = ReleaseDirPath()
	}
	if cfg.WorkspaceDir == "" {
		cfg.WorkspaceDir = WorkspaceDirPath()
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.VersionFile == "" {
		c.VersionFile = DefaultVersionFile
	}
	if c.Exclusions == nil {
		c.Exclusions = append([]string(nil), DefaultExclusions...)
	}
	if c.JournalPath == "" {
		c.JournalPath = DefaultJournalPath(c.WorkspaceDir)
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.ReleaseDir == "" {
		return fmt.Errorf("release_dir must be set")
	}
	if c.WorkspaceDir == "" {
		return fmt.Errorf("workspace_dir must be set")
	}
	if c.ReleaseDir == c.WorkspaceDir {
		return fmt.Errorf("release_dir and workspace_dir must differ")
	}
	if _, err := filepath.Match(c.Pattern, "probe.ipynb"); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}
	return nil
}
