package importer

import "fmt"

// PersistenceError reports an entity for which both the create and the
// fallback lookup failed. For authors and subjects the entity is dropped from
// the aggregate; for the root book it is fatal to the run.
type PersistenceError struct {
	// Kind is the entity kind ("author", "book", "edition", "subject").
	Kind string
	// Key is the dedupe key of the failed entity.
	Key string
	// Err is the underlying store error.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s %q: %v", e.Kind, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
