package ports

import "tutsync/internal/domain"

// Journal records applied sync runs so past reconciliations can be
// inspected later.
type Journal interface {
	// Record persists one applied sync run, including its per-file ops
	Record(rec *domain.SyncRecord) error

	// Recent returns up to limit runs, newest first. The returned records
	// carry category counts but not per-file ops.
	Recent(limit int) ([]domain.SyncRecord, error)

	// Close releases the underlying storage
	Close() error
}
