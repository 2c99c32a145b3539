package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the standard operations for restaurant storage.
type RestaurantRepository interface {
	Watchable

	Create(ctx context.Context, restaurant *entity.Restaurant) error
	List(ctx context.Context) ([]*entity.Restaurant, error)
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
