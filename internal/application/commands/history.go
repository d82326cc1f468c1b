package commands

import (
	"context"
	"fmt"

	"tutsync/internal/application"
	"tutsync/internal/domain"
	"tutsync/internal/ports"
)

// DefaultHistoryLimit bounds how many runs the history command returns
// when no explicit limit is given.
const DefaultHistoryLimit = 20

// HistoryCommand lists recent sync runs from the journal, newest first
type HistoryCommand struct {
	journal ports.Journal
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(journal ports.Journal, limit int) *HistoryCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryCommand{
		journal: journal,
		Limit:   limit,
	}
}

// Validate checks if the history can be read
func (c *HistoryCommand) Validate() error {
	if c.journal == nil {
		return &application.ValidationError{
			Field:   "journal",
			Message: "journal is required",
		}
	}
	return nil
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.SyncRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	records, err := c.journal.Recent(c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return records, nil
}
