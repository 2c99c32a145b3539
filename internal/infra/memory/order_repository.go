package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type orderRepository struct {
	*collection[*entity.Order]
}

// NewOrderRepository creates an empty in-memory order repository with its id
// counter at 1.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{
		collection: newCollection(
			func(o *entity.Order) int64 { return o.ID },
			func(o *entity.Order, id int64) { o.ID = id },
		),
	}
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	r.create(order)

	return nil
}

func (r *orderRepository) List(_ context.Context) ([]*entity.Order, error) {
	return r.list(), nil
}

func (r *orderRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := r.find(id)
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

func (r *orderRepository) Update(_ context.Context, order *entity.Order) error {
	if !r.update(order) {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}

func (r *orderRepository) ListByRestaurant(_ context.Context, restaurantID int64) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool { return o.RestaurantID == restaurantID }), nil
}
