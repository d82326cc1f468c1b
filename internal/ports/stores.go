package ports

import "io"

// ReleaseStore defines read-only access to the released reference set of
// tutorial documents. Documents are identified by basename.
type ReleaseStore interface {
	// List returns the basenames of all released documents, sorted and
	// deduplicated.
	List() ([]string, error)

	// Open opens a released document for reading. The caller closes it.
	Open(name string) (io.ReadCloser, error)

	// Version returns the short release token from the store's version
	// marker file.
	Version() (string, error)
}

// Workspace defines read-write access to the working set of tutorial
// documents being reconciled toward a release.
type Workspace interface {
	// List returns the basenames of all workspace documents, sorted and
	// deduplicated. Exclusion filtering is the planner's job, not the
	// store's.
	List() ([]string, error)

	// Write creates or overwrites a document with the given content
	Write(name string, content io.Reader) error

	// Remove deletes a document from the workspace
	Remove(name string) error

	// Path returns the absolute path of a document within the workspace
	// (the document does not have to exist).
	Path(name string) string
}
