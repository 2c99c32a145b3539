package usecase

import (
	"context"

	"fooddesk/internal/domain/entity"
)

// OrderUsecase defines the interface for order-related business operations.
// It owns every derived order field: the total price is recomputed from the
// line items on each create and update, the creation timestamp is set once,
// and the attached chat is created or overwritten but never duplicated.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *OrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id int64, input *OrderInput) (*entity.Order, error)

	// DeleteOrder removes the order and its attached chat, if any.
	DeleteOrder(ctx context.Context, id int64) (bool, error)

	// ChatOf returns the chat attached to the order, or a wrapped
	// not-found error when the order has none.
	ChatOf(ctx context.Context, orderID int64) (*entity.Chat, error)
}

// --- Input DTOs ---

// OrderInput defines the data required to place or fully replace an order.
// TotalPrice and CreatedAt are absent on purpose; the service derives them.
type OrderInput struct {
	BuyerID      int64 `validate:"required"`
	RestaurantID int64 `validate:"required"`
	DriverID     int64 // Optional; zero means no driver assigned yet.
	Status       entity.OrderStatus
	DishIDs      []int64 `validate:"min=1"`

	// ChatMessages is the chat transcript. Blank means no chat on create
	// and leaves an existing chat's text as given on update.
	ChatMessages string
}
