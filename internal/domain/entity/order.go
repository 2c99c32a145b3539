package entity

import "time"

// Order links a buyer, a restaurant, an optional driver and a sequence of
// dish line items. TotalPrice and CreatedAt are derived by the order service;
// callers never supply them.
type Order struct {
	ID           int64 // Assigned by the order repository, starting at 1, never reused.
	BuyerID      int64 // Always a non-admin user.
	RestaurantID int64
	DriverID     int64       // Zero until a driver is assigned.
	Status       OrderStatus // Freely chosen by the caller, except that terminal statuses cannot be left.
	DishIDs      []int64     // Line items in selection order. A dish may appear more than once; each occurrence is a separate line item.
	TotalPrice   float64     // Sum of line-item prices as of the last create or update. Never set directly.
	CreatedAt    time.Time   // Set once at creation, immutable afterwards.
	ChatID       int64       // Zero while the order has no chat. At most one chat per order, ever.
}

// HasDriver reports whether a driver has been assigned yet.
func (o *Order) HasDriver() bool {
	return o.DriverID != 0
}

// HasChat reports whether a chat transcript is attached.
func (o *Order) HasChat() bool {
	return o.ChatID != 0
}
