package domain

import "time"

// RecordedOp is a single file operation that was applied during a sync run
type RecordedOp struct {
	Kind OpKind
	Name string
}

// SyncRecord describes one applied sync run for the journal
type SyncRecord struct {
	ID        int64
	Version   string // release token the run was applied from
	Refreshed int
	Added     int
	Removed   int
	Ops       []RecordedOp
	StartedAt time.Time
	Duration  time.Duration
}

// NewSyncRecord builds a journal record from an applied plan
func NewSyncRecord(plan *Plan, version string, startedAt time.Time, duration time.Duration) *SyncRecord {
	rec := &SyncRecord{
		Version:   version,
		Refreshed: len(plan.Refreshed),
		Added:     len(plan.Added),
		Removed:   len(plan.Removed),
		Ops:       make([]RecordedOp, 0, plan.TotalOps()),
		StartedAt: startedAt,
		Duration:  duration,
	}
	for _, e := range plan.Entries() {
		rec.Ops = append(rec.Ops, RecordedOp{Kind: e.Kind, Name: e.Name})
	}
	return rec
}
