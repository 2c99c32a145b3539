package entity

// Restaurant is an account that owns a menu of dishes and receives orders.
// Its menu and order backlog are not stored on the record; they are derived
// through the dish and order repositories so there is a single source of
// truth for each relation.
type Restaurant struct {
	ID int64 // Assigned by the restaurant repository, starting at 1, never reused.
	Person
}
