package commands

import (
	"context"
	"fmt"

	"tutsync/internal/application"
	"tutsync/internal/ports"
)

// VersionCommand reads the release token from the release store
type VersionCommand struct {
	release ports.ReleaseStore
}

// NewVersionCommand creates a new VersionCommand
func NewVersionCommand(release ports.ReleaseStore) *VersionCommand {
	return &VersionCommand{release: release}
}

// Validate checks if the version can be read
func (c *VersionCommand) Validate() error {
	if c.release == nil {
		return &application.ValidationError{
			Field:   "release",
			Message: "release store is required",
		}
	}
	return nil
}

// Execute runs the version command
func (c *VersionCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	version, err := c.release.Version()
	if err != nil {
		return "", fmt.Errorf("failed to read release version: %w", err)
	}
	return version, nil
}
