package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWorkspace_WriteAndList(t *testing.T) {
	dir := t.TempDir()
	ws := NewWorkspace(dir, "*.ipynb")

	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("v1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names, err := ws.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"a_tutorial.ipynb"}) {
		t.Errorf("List() = %v", names)
	}

	data, err := os.ReadFile(ws.Path("a_tutorial.ipynb"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v1" {
		t.Errorf("content = %q, want %q", data, "v1")
	}
}

func TestWorkspace_WriteOverwrites(t *testing.T) {
	ws := NewWorkspace(t.TempDir(), "*.ipynb")

	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("old")); err != nil {
		t.Fatal(err)
	}
	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("new")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(ws.Path("a_tutorial.ipynb"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestWorkspace_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ws := NewWorkspace(dir, "*.ipynb")

	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("v1")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".tutsync-tmp-") {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
}

func TestWorkspace_WriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "workspace")
	ws := NewWorkspace(dir, "*.ipynb")

	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("v1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkspace_Remove(t *testing.T) {
	ws := NewWorkspace(t.TempDir(), "*.ipynb")

	if err := ws.Write("a_tutorial.ipynb", strings.NewReader("v1")); err != nil {
		t.Fatal(err)
	}
	if err := ws.Remove("a_tutorial.ipynb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names, err := ws.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestWorkspace_RemoveMissing(t *testing.T) {
	ws := NewWorkspace(t.TempDir(), "*.ipynb")
	if err := ws.Remove("ghost.ipynb"); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestWorkspace_RejectsBadNames(t *testing.T) {
	ws := NewWorkspace(t.TempDir(), "*.ipynb")

	for _, name := range []string{"", "../escape.ipynb", "sub/doc.ipynb"} {
		if err := ws.Write(name, strings.NewReader("x")); err == nil {
			t.Errorf("Write(%q) succeeded, want error", name)
		}
		if err := ws.Remove(name); err == nil {
			t.Errorf("Remove(%q) succeeded, want error", name)
		}
	}
}
