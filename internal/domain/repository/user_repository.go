package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user storage.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	Watchable

	// Create assigns the next id to the user and appends it to the
	// collection. Insertion order is display order.
	Create(ctx context.Context, user *entity.User) error

	// List returns a snapshot of the collection membership, in insertion
	// order. Iterating it is safe against later mutations.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Update replaces the stored record with the same id wholesale.
	// Returns ErrUserNotFound when no such record exists.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByID removes the record with the given id and reports whether
	// anything was removed. Deleting a missing id is a no-op.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
