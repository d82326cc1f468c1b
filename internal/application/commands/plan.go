package commands

import (
	"context"
	"fmt"

	"tutsync/internal/application"
	"tutsync/internal/domain"
	"tutsync/internal/ports"
)

// PlanResult contains the computed reconciliation plan
type PlanResult struct {
	Plan    *domain.Plan
	Version string // release token the plan was computed against
}

// PlanCommand computes the reconciliation plan between the release store
// and the workspace without touching either. It is the dry-run half of a
// sync.
type PlanCommand struct {
	release    ports.ReleaseStore
	workspace  ports.Workspace
	Exclusions []string
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(release ports.ReleaseStore, workspace ports.Workspace, exclusions []string) *PlanCommand {
	return &PlanCommand{
		release:    release,
		workspace:  workspace,
		Exclusions: exclusions,
	}
}

// Validate checks if the plan can be computed
func (c *PlanCommand) Validate() error {
	if c.release == nil {
		return &application.ValidationError{
			Field:   "release",
			Message: "release store is required",
		}
	}
	if c.workspace == nil {
		return &application.ValidationError{
			Field:   "workspace",
			Message: "workspace is required",
		}
	}
	return nil
}

// Execute computes the plan. It performs no side effects.
func (c *PlanCommand) Execute(ctx context.Context) (*PlanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	releaseIDs, err := c.release.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list release store: %w", err)
	}

	workspaceIDs, err := c.workspace.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace: %w", err)
	}

	version, err := c.release.Version()
	if err != nil {
		return nil, fmt.Errorf("failed to read release version: %w", err)
	}

	return &PlanResult{
		Plan:    domain.ComputePlan(releaseIDs, workspaceIDs, c.Exclusions),
		Version: version,
	}, nil
}
