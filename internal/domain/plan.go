package domain

import (
	"slices"
	"sort"
)

// OpKind classifies what the synchronizer will do with a document
type OpKind int

const (
	OpRefresh OpKind = iota // present in both; overwritten from the release
	OpAdd                   // present only in the release; newly copied
	OpRemove                // present only in the workspace; deleted
)

// String returns a human-readable name for the operation kind
func (k OpKind) String() string {
	switch k {
	case OpRefresh:
		return "refresh"
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Plan is the reconciliation plan computed from the release and workspace
// document sets. The three categories partition the union of both sets:
// every document falls in exactly one category.
type Plan struct {
	Refreshed []string // workspace ∩ release
	Added     []string // release − workspace
	Removed   []string // workspace − release
}

// PlanEntry is a single document operation within a plan
type PlanEntry struct {
	Name string
	Kind OpKind
}

// ComputePlan partitions the release and workspace document sets into the
// refreshed/added/removed categories. Inputs are basename lists; they are
// deduplicated and sorted before comparison. Exclusions are stripped from
// both sets and never appear in any category. The computation is pure and
// idempotent.
func ComputePlan(releaseIDs, workspaceIDs, exclusions []string) *Plan {
	release := normalize(releaseIDs, exclusions)
	workspace := normalize(workspaceIDs, exclusions)

	inRelease := make(map[string]bool, len(release))
	for _, id := range release {
		inRelease[id] = true
	}
	inWorkspace := make(map[string]bool, len(workspace))
	for _, id := range workspace {
		inWorkspace[id] = true
	}

	plan := &Plan{
		Refreshed: make([]string, 0),
		Added:     make([]string, 0),
		Removed:   make([]string, 0),
	}

	for _, id := range workspace {
		if inRelease[id] {
			plan.Refreshed = append(plan.Refreshed, id)
		} else {
			plan.Removed = append(plan.Removed, id)
		}
	}
	for _, id := range release {
		if !inWorkspace[id] {
			plan.Added = append(plan.Added, id)
		}
	}

	return plan
}

// IsEmpty reports whether the plan contains no operations
func (p *Plan) IsEmpty() bool {
	return len(p.Refreshed) == 0 && len(p.Added) == 0 && len(p.Removed) == 0
}

// TotalOps returns the number of file operations the plan implies
func (p *Plan) TotalOps() int {
	return len(p.Refreshed) + len(p.Added) + len(p.Removed)
}

// Copies returns the documents that will be copied from the release
// (refreshed first, then added), in the order Apply processes them.
func (p *Plan) Copies() []string {
	copies := make([]string, 0, len(p.Refreshed)+len(p.Added))
	copies = append(copies, p.Refreshed...)
	copies = append(copies, p.Added...)
	return copies
}

// Entries flattens the plan into a single ordered list for display:
// refreshed, then added, then removed.
func (p *Plan) Entries() []PlanEntry {
	entries := make([]PlanEntry, 0, p.TotalOps())
	for _, name := range p.Refreshed {
		entries = append(entries, PlanEntry{Name: name, Kind: OpRefresh})
	}
	for _, name := range p.Added {
		entries = append(entries, PlanEntry{Name: name, Kind: OpAdd})
	}
	for _, name := range p.Removed {
		entries = append(entries, PlanEntry{Name: name, Kind: OpRemove})
	}
	return entries
}

// normalize deduplicates and sorts a basename list, dropping empty names
// and anything in the exclusion list.
func normalize(ids, exclusions []string) []string {
	result := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] || slices.Contains(exclusions, id) {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}
