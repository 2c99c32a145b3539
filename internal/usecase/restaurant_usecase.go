package usecase

import (
	"context"

	"fooddesk/internal/domain/entity"
)

// RestaurantUsecase defines the interface for restaurant-related business
// operations. Deleting a restaurant cascades to its menu but is refused while
// orders or reviews still reference it.
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, input *RestaurantInput) (*entity.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, input *RestaurantInput) (*entity.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) (bool, error)

	// OrdersFor returns the restaurant's order backlog.
	OrdersFor(ctx context.Context, restaurantID int64) ([]*entity.Order, error)
}

// --- Input DTOs ---

// RestaurantInput defines the data required to create or fully replace a
// restaurant account.
type RestaurantInput struct {
	Login    string
	Password string
	Name     string
	Surname  string
	Phone    string
	Address  string
}
