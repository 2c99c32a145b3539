// Package repository defines the interfaces for the storage layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "github.com/google/uuid"

// MutationKind represents the kind of change a collection committed.
type MutationKind string

const (
	// MutationCreated indicates a new record was appended.
	MutationCreated MutationKind = "created"
	// MutationUpdated indicates a stored record was replaced wholesale.
	MutationUpdated MutationKind = "updated"
	// MutationDeleted indicates a record was removed.
	MutationDeleted MutationKind = "deleted"
)

// String returns the string representation of the MutationKind.
func (k MutationKind) String() string {
	return string(k)
}

// Mutation describes one committed change to a collection. Views bound to a
// collection re-read it when they receive one instead of aliasing the
// collection's internal storage.
type Mutation struct {
	EventID  uuid.UUID    // Unique id of this change event.
	Kind     MutationKind // What happened.
	EntityID int64        // The id of the record that changed.
}

// Watchable is implemented by every collection whose consumers bind views to
// it. Version increases by one on every committed mutation, so a view can
// cheaply detect staleness; Subscribe delivers each mutation synchronously on
// the mutating goroutine, after the change is visible.
type Watchable interface {
	// Version returns the number of mutations committed so far.
	Version() uint64

	// Subscribe registers fn for future mutations and returns a cancel
	// function that unregisters it.
	Subscribe(fn func(Mutation)) (cancel func())
}
