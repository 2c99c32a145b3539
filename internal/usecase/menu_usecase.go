package usecase

import (
	"context"

	"fooddesk/internal/domain/entity"
)

// MenuUsecase defines the interface for dish-related business operations,
// including the live filtered view the dish screens bind to.
type MenuUsecase interface {
	CreateDish(ctx context.Context, input *DishInput) (*entity.Dish, error)
	ListDishes(ctx context.Context) ([]*entity.Dish, error)
	GetDish(ctx context.Context, id int64) (*entity.Dish, error)
	UpdateDish(ctx context.Context, id int64, input *DishInput) (*entity.Dish, error)
	DeleteDish(ctx context.Context, id int64) (bool, error)

	// MenuOf returns the menu of one restaurant.
	MenuOf(ctx context.Context, restaurantID int64) ([]*entity.Dish, error)

	// DishesFor builds a live view of the dish collection narrowed to one
	// restaurant; a nil restaurantID means every dish. Switching the
	// restaurant filter means asking for a new view and re-checking any
	// prior selection with Contains.
	DishesFor(restaurantID *int64) DishView
}

// DishView is a live projection of the dish collection. It re-reads the
// underlying collection on every call, so it reflects later creates, updates
// and deletes without an explicit refresh.
type DishView interface {
	// Dishes returns the dishes currently in view, in insertion order.
	Dishes(ctx context.Context) ([]*entity.Dish, error)

	// Contains reports whether the dish with the given id is currently in
	// view. Used to invalidate selections after the filter changes.
	Contains(ctx context.Context, dishID int64) bool

	// Version proxies the dish collection's mutation counter so a bound
	// widget can detect staleness without re-reading.
	Version() uint64
}

// --- Input DTOs ---

// DishInput defines the data required to create or fully replace a dish.
// The restaurant reference is required and must point at a live restaurant.
type DishInput struct {
	Name         string
	Ingredients  string
	Price        float64 `validate:"gte=0"`
	Spicy        bool
	Vegan        bool
	RestaurantID int64 `validate:"required"`
}
