package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type dishRepository struct {
	*collection[*entity.Dish]
}

// NewDishRepository creates an empty in-memory dish repository with its id
// counter at 1.
func NewDishRepository() repository.DishRepository {
	return &dishRepository{
		collection: newCollection(
			func(d *entity.Dish) int64 { return d.ID },
			func(d *entity.Dish, id int64) { d.ID = id },
		),
	}
}

func (r *dishRepository) Create(_ context.Context, dish *entity.Dish) error {
	r.create(dish)

	return nil
}

func (r *dishRepository) List(_ context.Context) ([]*entity.Dish, error) {
	return r.list(), nil
}

func (r *dishRepository) FindByID(_ context.Context, id int64) (*entity.Dish, error) {
	dish, ok := r.find(id)
	if !ok {
		return nil, repository.ErrDishNotFound
	}

	return dish, nil
}

func (r *dishRepository) Update(_ context.Context, dish *entity.Dish) error {
	if !r.update(dish) {
		return repository.ErrDishNotFound
	}

	return nil
}

func (r *dishRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}

func (r *dishRepository) ListByRestaurant(_ context.Context, restaurantID int64) ([]*entity.Dish, error) {
	return r.filter(func(d *entity.Dish) bool { return d.RestaurantID == restaurantID }), nil
}
