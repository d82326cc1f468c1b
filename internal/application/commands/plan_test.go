package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tutsync/internal/application"
)

func TestPlanCommand_Execute(t *testing.T) {
	release := &fakeRelease{
		docs:    map[string]string{"A.ipynb": "a", "B.ipynb": "b"},
		version: "20260824",
	}
	workspace := &fakeWorkspace{
		docs: map[string]string{"B.ipynb": "old", "C.ipynb": "c", "index.ipynb": "idx"},
	}

	cmd := NewPlanCommand(release, workspace, []string{"index.ipynb"})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Version != "20260824" {
		t.Errorf("Version = %q, want %q", result.Version, "20260824")
	}
	if !reflect.DeepEqual(result.Plan.Refreshed, []string{"B.ipynb"}) {
		t.Errorf("Refreshed = %v", result.Plan.Refreshed)
	}
	if !reflect.DeepEqual(result.Plan.Added, []string{"A.ipynb"}) {
		t.Errorf("Added = %v", result.Plan.Added)
	}
	if !reflect.DeepEqual(result.Plan.Removed, []string{"C.ipynb"}) {
		t.Errorf("Removed = %v", result.Plan.Removed)
	}
}

func TestPlanCommand_ListError(t *testing.T) {
	release := &fakeRelease{listErr: errors.New("disk gone")}
	workspace := &fakeWorkspace{docs: map[string]string{}}

	_, err := NewPlanCommand(release, workspace, nil).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error when release listing fails")
	}
}

func TestPlanCommand_Validate(t *testing.T) {
	var validationErr *application.ValidationError

	_, err := NewPlanCommand(nil, &fakeWorkspace{}, nil).Execute(context.Background())
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for missing release store, got %v", err)
	}

	_, err = NewPlanCommand(&fakeRelease{}, nil, nil).Execute(context.Background())
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for missing workspace, got %v", err)
	}
}
