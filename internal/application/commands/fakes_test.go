package commands

import (
	"bytes"
	"context"
	"io"
	"sort"

	"tutsync/internal/domain"
)

// fakeRelease is an in-memory read-only release store
type fakeRelease struct {
	docs    map[string]string
	version string
	listErr error
	openErr error
}

func (f *fakeRelease) List() ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeRelease) Open(name string) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader([]byte(f.docs[name]))), nil
}

func (f *fakeRelease) Version() (string, error) {
	return f.version, nil
}

// fakeWorkspace is an in-memory read-write workspace that records every
// mutation in order.
type fakeWorkspace struct {
	docs      map[string]string
	writeErr  error
	removeErr error
	mutations []string // "write X" / "remove X" in call order
}

func (f *fakeWorkspace) List() ([]string, error) {
	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeWorkspace) Write(name string, content io.Reader) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.docs[name] = string(data)
	f.mutations = append(f.mutations, "write "+name)
	return nil
}

func (f *fakeWorkspace) Remove(name string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.docs, name)
	f.mutations = append(f.mutations, "remove "+name)
	return nil
}

func (f *fakeWorkspace) Path(name string) string {
	return "/workspace/" + name
}

// fakeConfirmer records whether it was asked and answers with a fixed decision
type fakeConfirmer struct {
	proceed bool
	err     error
	asked   bool
	version string
}

func (f *fakeConfirmer) Confirm(ctx context.Context, version string) (bool, error) {
	f.asked = true
	f.version = version
	return f.proceed, f.err
}

// fakeJournal collects recorded runs in memory
type fakeJournal struct {
	records []*domain.SyncRecord
}

func (f *fakeJournal) Record(rec *domain.SyncRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeJournal) Recent(limit int) ([]domain.SyncRecord, error) {
	out := make([]domain.SyncRecord, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.records[i])
	}
	return out, nil
}

func (f *fakeJournal) Close() error { return nil }
