package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order storage.
type OrderRepository interface {
	Watchable

	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context) ([]*entity.Order, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// ListByRestaurant returns the order backlog of one restaurant, in
	// insertion order.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Order, error)
}
