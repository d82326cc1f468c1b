package commands

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"tutsync/internal/application"
)

func TestSyncCommand_AppliesConfirmedPlan(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "new-a", "B.ipynb": "new-b"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{
		docs: map[string]string{"B.ipynb": "old-b", "C.ipynb": "c"},
	}
	confirmer := &fakeConfirmer{proceed: true}
	journal := &fakeJournal{}

	var out strings.Builder
	cmd := NewSyncCommand(release, workspace, confirmer, journal, &out, nil)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !confirmer.asked {
		t.Error("confirmer was never consulted")
	}
	if confirmer.version != "20260824" {
		t.Errorf("confirmer shown version %q, want %q", confirmer.version, "20260824")
	}

	// Workspace converges on the release set
	wantDocs := map[string]string{"A.ipynb": "new-a", "B.ipynb": "new-b"}
	if !reflect.DeepEqual(workspace.docs, wantDocs) {
		t.Errorf("workspace = %v, want %v", workspace.docs, wantDocs)
	}

	// Copies happen before deletions
	wantMutations := []string{"write B.ipynb", "write A.ipynb", "remove C.ipynb"}
	if !reflect.DeepEqual(workspace.mutations, wantMutations) {
		t.Errorf("mutations = %v, want %v", workspace.mutations, wantMutations)
	}

	if result.Applied == nil || result.Applied.Copied != 2 || result.Applied.Deleted != 1 {
		t.Errorf("unexpected apply result: %+v", result.Applied)
	}

	// One line per file operation
	for _, want := range []string{"copy A.ipynb", "copy B.ipynb", "delete C.ipynb"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	// Run recorded in the journal
	if len(journal.records) != 1 {
		t.Fatalf("journal has %d records, want 1", len(journal.records))
	}
	rec := journal.records[0]
	if rec.Version != "20260824" || rec.Refreshed != 1 || rec.Added != 1 || rec.Removed != 1 {
		t.Errorf("unexpected journal record: %+v", rec)
	}
}

func TestSyncCommand_DeclinedConfirmation(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "a"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{
		docs: map[string]string{"B.ipynb": "b"},
	}
	confirmer := &fakeConfirmer{proceed: false}

	var out strings.Builder
	_, err := NewSyncCommand(release, workspace, confirmer, nil, &out, nil).Execute(context.Background())

	if !errors.Is(err, application.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}

	// Zero side effects before the gate
	if len(workspace.mutations) != 0 {
		t.Errorf("workspace was mutated despite cancellation: %v", workspace.mutations)
	}
}

func TestSyncCommand_EmptyPlanSkipsConfirmation(t *testing.T) {
	// Identical names still produce refresh copies, so an empty plan
	// needs genuinely empty stores.
	release := &fakeRelease{docs: map[string]string{}, version: "20260824"}
	workspace := &fakeWorkspace{docs: map[string]string{}}
	confirmer := &fakeConfirmer{proceed: true}

	var out strings.Builder
	result, err := NewSyncCommand(release, workspace, confirmer, nil, &out, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if confirmer.asked {
		t.Error("confirmer consulted for an empty plan")
	}
	if result.Applied != nil {
		t.Errorf("expected no apply result, got %+v", result.Applied)
	}
	if !strings.Contains(result.Message, "up to date") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestSyncCommand_IdenticalSetsOnlyCopies(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "new-a", "B.ipynb": "new-b"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{
		docs: map[string]string{"A.ipynb": "old-a", "B.ipynb": "old-b"},
	}

	var out strings.Builder
	result, err := NewSyncCommand(release, workspace, &fakeConfirmer{proceed: true}, nil, &out, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Applied.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0", result.Applied.Deleted)
	}
	if result.Applied.Copied != 2 {
		t.Errorf("Copied = %d, want 2", result.Applied.Copied)
	}
	for name, content := range workspace.docs {
		if !strings.HasPrefix(content, "new-") {
			t.Errorf("%s was not refreshed: %q", name, content)
		}
	}
}

func TestSyncCommand_ApplyErrorAbortsRemainder(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "a"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{
		docs:     map[string]string{"B.ipynb": "b"},
		writeErr: errors.New("disk full"),
	}
	journal := &fakeJournal{}

	var out strings.Builder
	_, err := NewSyncCommand(release, workspace, &fakeConfirmer{proceed: true}, journal, &out, nil).Execute(context.Background())

	var applyErr *application.ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("expected ApplyError, got %v", err)
	}
	if applyErr.Op != "copy" || applyErr.Name != "A.ipynb" {
		t.Errorf("unexpected ApplyError: %+v", applyErr)
	}

	// The failed run must not be journaled, and the removal must not run
	if len(journal.records) != 0 {
		t.Errorf("failed run was journaled: %+v", journal.records)
	}
	if len(workspace.mutations) != 0 {
		t.Errorf("unexpected mutations after failed copy: %v", workspace.mutations)
	}
}

func TestSyncCommand_ConfirmerError(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "a"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{docs: map[string]string{}}
	confirmer := &fakeConfirmer{err: errors.New("stdin closed")}

	var out strings.Builder
	_, err := NewSyncCommand(release, workspace, confirmer, nil, &out, nil).Execute(context.Background())
	if err == nil || errors.Is(err, application.ErrCancelled) {
		t.Fatalf("expected confirmation failure, got %v", err)
	}
}
