package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrDriverNotFound is returned when a driver is not found.
var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository defines the standard operations for driver storage.
type DriverRepository interface {
	Watchable

	Create(ctx context.Context, driver *entity.Driver) error
	List(ctx context.Context) ([]*entity.Driver, error)
	FindByID(ctx context.Context, id int64) (*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
