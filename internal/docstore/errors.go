package docstore

import "errors"

var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("docstore: not found")
	// ErrDuplicate is returned when inserting a document whose id already
	// exists within its partition.
	ErrDuplicate = errors.New("docstore: duplicate document")
	// ErrStale is returned when a conditional write observes a revision
	// other than the one the caller read.
	ErrStale = errors.New("docstore: stale revision")
)
