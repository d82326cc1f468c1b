package ports

import "context"

// Confirmer is the confirmation gate in front of the apply step. The
// interactive adapter blocks for operator input; tests substitute a
// non-interactive stub. A false result means the operator declined;
// the synchronizer surfaces that as a cancellation, not an error.
type Confirmer interface {
	// Confirm asks the operator whether the sync may proceed. The release
	// version token is shown for awareness.
	Confirm(ctx context.Context, version string) (bool, error)
}
