package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"tutsync/internal/application"
	"tutsync/internal/domain"
	"tutsync/internal/ports"
)

// ApplyResult contains the result of applying a plan
type ApplyResult struct {
	Copied  int
	Deleted int
	Message string
}

// ApplyCommand executes a reconciliation plan: refreshed and added
// documents are copied byte-for-byte from the release store, removed
// documents are deleted from the workspace. Copies run before deletions.
// The first failed operation aborts the remainder; already-applied
// operations are not rolled back.
type ApplyCommand struct {
	release   ports.ReleaseStore
	workspace ports.Workspace
	journal   ports.Journal // optional; nil disables journaling
	out       io.Writer

	Plan    *domain.Plan
	Version string
}

// NewApplyCommand creates a new ApplyCommand. out receives one line per
// file operation performed.
func NewApplyCommand(release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal, out io.Writer, result *PlanResult) *ApplyCommand {
	return &ApplyCommand{
		release:   release,
		workspace: workspace,
		journal:   journal,
		out:       out,
		Plan:      result.Plan,
		Version:   result.Version,
	}
}

// Validate checks if the plan can be applied
func (c *ApplyCommand) Validate() error {
	if c.Plan == nil {
		return &application.ValidationError{
			Field:   "plan",
			Message: "plan is required",
		}
	}
	return nil
}

// Execute runs the apply command
func (c *ApplyCommand) Execute(ctx context.Context) (*ApplyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &ApplyResult{}

	for _, name := range c.Plan.Copies() {
		if err := c.copyDocument(name); err != nil {
			return nil, &application.ApplyError{Op: "copy", Name: name, Err: err}
		}
		fmt.Fprintf(c.out, "copy %s\n", name)
		result.Copied++
	}

	for _, name := range c.Plan.Removed {
		if err := c.workspace.Remove(name); err != nil {
			return nil, &application.ApplyError{Op: "delete", Name: name, Err: err}
		}
		fmt.Fprintf(c.out, "delete %s\n", name)
		result.Deleted++
	}

	if c.journal != nil {
		rec := domain.NewSyncRecord(c.Plan, c.Version, start, time.Since(start))
		if err := c.journal.Record(rec); err != nil {
			return nil, fmt.Errorf("failed to record sync run: %w", err)
		}
	}

	result.Message = fmt.Sprintf("Applied release %s: %d copied, %d deleted", c.Version, result.Copied, result.Deleted)
	return result, nil
}

func (c *ApplyCommand) copyDocument(name string) error {
	src, err := c.release.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	return c.workspace.Write(name, src)
}
