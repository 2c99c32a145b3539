package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrDishNotFound is returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// DishRepository defines the standard operations for dish storage.
type DishRepository interface {
	Watchable

	Create(ctx context.Context, dish *entity.Dish) error
	List(ctx context.Context) ([]*entity.Dish, error)
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// ListByRestaurant returns the menu of one restaurant, in insertion
	// order.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Dish, error)
}
