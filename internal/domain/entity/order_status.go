package entity

import "slices"

// OrderStatus represents where an order is in its delivery lifecycle.
type OrderStatus string

const (
	// StatusPending is the initial status of every order.
	StatusPending OrderStatus = "PENDING"
	// StatusSeenByStaff indicates restaurant staff opened the order.
	StatusSeenByStaff OrderStatus = "SEEN_BY_STAFF"
	// StatusAccepted indicates the restaurant accepted the order.
	StatusAccepted OrderStatus = "ACCEPTED"
	// StatusRejected indicates the restaurant turned the order down. Terminal.
	StatusRejected OrderStatus = "REJECTED"
	// StatusFoodBeingPrepared indicates the kitchen is working on the order.
	StatusFoodBeingPrepared OrderStatus = "FOOD_BEING_PREPARED"
	// StatusWaitingForDriver indicates the food is ready for pickup.
	StatusWaitingForDriver OrderStatus = "WAITING_FOR_DRIVER"
	// StatusInDelivery indicates a driver is carrying the order.
	StatusInDelivery OrderStatus = "IN_DELIVERY"
	// StatusDelivered indicates the buyer received the order. Terminal.
	StatusDelivered OrderStatus = "DELIVERED"
	// StatusCompleted indicates the order was settled. Terminal.
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled indicates the buyer withdrew the order. Terminal.
	StatusCancelled OrderStatus = "CANCELLED"
)

// lifecycle is the happy path, in order. REJECTED and CANCELLED branch off
// from any non-terminal status.
var lifecycle = []OrderStatus{
	StatusPending,
	StatusSeenByStaff,
	StatusAccepted,
	StatusFoodBeingPrepared,
	StatusWaitingForDriver,
	StatusInDelivery,
	StatusDelivered,
	StatusCompleted,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSeenByStaff, StatusAccepted, StatusRejected,
		StatusFoodBeingPrepared, StatusWaitingForDriver, StatusInDelivery,
		StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status change is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// NextStatuses returns the statuses a strict forward-only flow would allow
// after s: the next lifecycle step plus the REJECTED/CANCELLED branches.
// The order service itself only refuses to leave terminal statuses; these
// helpers exist for callers that want to offer a stricter flow.
func (s OrderStatus) NextStatuses() []OrderStatus {
	if s.IsTerminal() {
		return nil
	}

	next := []OrderStatus{}
	if i := slices.Index(lifecycle, s); i >= 0 && i+1 < len(lifecycle) {
		next = append(next, lifecycle[i+1])
	}

	return append(next, StatusRejected, StatusCancelled)
}

// CanBecome reports whether the strict forward-only flow allows moving from
// s to next. Staying put is always allowed outside terminal statuses.
func (s OrderStatus) CanBecome(next OrderStatus) bool {
	if s == next {
		return !s.IsTerminal()
	}

	return slices.Contains(s.NextStatuses(), next)
}

// OrderStatuses lists every valid status in lifecycle order, with the
// terminal branches last. Used to populate status pickers.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusSeenByStaff,
		StatusAccepted,
		StatusFoodBeingPrepared,
		StatusWaitingForDriver,
		StatusInDelivery,
		StatusDelivered,
		StatusCompleted,
		StatusRejected,
		StatusCancelled,
	}
}
