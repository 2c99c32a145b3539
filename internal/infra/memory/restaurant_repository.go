package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type restaurantRepository struct {
	*collection[*entity.Restaurant]
}

// NewRestaurantRepository creates an empty in-memory restaurant repository
// with its id counter at 1.
func NewRestaurantRepository() repository.RestaurantRepository {
	return &restaurantRepository{
		collection: newCollection(
			func(r *entity.Restaurant) int64 { return r.ID },
			func(r *entity.Restaurant, id int64) { r.ID = id },
		),
	}
}

func (r *restaurantRepository) Create(_ context.Context, restaurant *entity.Restaurant) error {
	r.create(restaurant)

	return nil
}

func (r *restaurantRepository) List(_ context.Context) ([]*entity.Restaurant, error) {
	return r.list(), nil
}

func (r *restaurantRepository) FindByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	restaurant, ok := r.find(id)
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (r *restaurantRepository) Update(_ context.Context, restaurant *entity.Restaurant) error {
	if !r.update(restaurant) {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func (r *restaurantRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}
