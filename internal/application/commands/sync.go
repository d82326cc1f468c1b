package commands

import (
	"context"
	"fmt"
	"io"

	"tutsync/internal/application"
	"tutsync/internal/domain"
	"tutsync/internal/ports"
)

// SyncResult contains the result of a full sync run
type SyncResult struct {
	Plan    *domain.Plan
	Version string
	Applied *ApplyResult // nil when there was nothing to apply
	Message string
}

// SyncCommand runs the full reconciliation: compute the plan, report it,
// gate on the confirmer, then apply. A declined confirmation surfaces as
// application.ErrCancelled before any file operation.
type SyncCommand struct {
	release   ports.ReleaseStore
	workspace ports.Workspace
	confirmer ports.Confirmer
	journal   ports.Journal // optional
	out       io.Writer

	Exclusions []string
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(release ports.ReleaseStore, workspace ports.Workspace, confirmer ports.Confirmer, journal ports.Journal, out io.Writer, exclusions []string) *SyncCommand {
	return &SyncCommand{
		release:    release,
		workspace:  workspace,
		confirmer:  confirmer,
		journal:    journal,
		out:        out,
		Exclusions: exclusions,
	}
}

// Validate checks if the sync can run
func (c *SyncCommand) Validate() error {
	if c.confirmer == nil {
		return &application.ValidationError{
			Field:   "confirmer",
			Message: "confirmer is required",
		}
	}
	return NewPlanCommand(c.release, c.workspace, c.Exclusions).Validate()
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	planned, err := NewPlanCommand(c.release, c.workspace, c.Exclusions).Execute(ctx)
	if err != nil {
		return nil, err
	}

	WriteReport(c.out, planned)

	if planned.Plan.IsEmpty() {
		return &SyncResult{
			Plan:    planned.Plan,
			Version: planned.Version,
			Message: "Workspace is up to date, nothing to apply",
		}, nil
	}

	ok, err := c.confirmer.Confirm(ctx, planned.Version)
	if err != nil {
		return nil, fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return nil, application.ErrCancelled
	}

	applied, err := NewApplyCommand(c.release, c.workspace, c.journal, c.out, planned).Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		Plan:    planned.Plan,
		Version: planned.Version,
		Applied: applied,
		Message: applied.Message,
	}, nil
}
