package application

import "tutsync/internal/domain"

// Re-export operation kinds for use by adapters
type OpKind = domain.OpKind

const (
	OpRefresh = domain.OpRefresh
	OpAdd     = domain.OpAdd
	OpRemove  = domain.OpRemove
)

// Re-export domain types for use by adapters
type (
	Plan       = domain.Plan
	PlanEntry  = domain.PlanEntry
	SyncRecord = domain.SyncRecord
)
