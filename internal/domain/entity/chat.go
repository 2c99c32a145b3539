package entity

// Chat is the free-form message transcript attached one-to-one to an order.
type Chat struct {
	ID       int64 // Assigned by the chat repository, starting at 1, never reused.
	OrderID  int64 // Back-reference to the owning order.
	Messages string
}
