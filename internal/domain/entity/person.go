// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Person holds the identity fields shared by every kind of account.
// Restaurant and Driver embed it by value instead of inheriting from User,
// so there is exactly one place these fields are defined.
type Person struct {
	Login    string // Login name used by the presentation layer; uniqueness is not enforced by the store.
	Password string // Opaque credential. The store never inspects or hashes it.
	Name     string
	Surname  string
	Phone    string // Already validated by the presentation layer before it reaches the store.
	Address  string
}

// FullName renders the person for display lists.
func (p Person) FullName() string {
	return p.Name + " " + p.Surname
}

// User is a plain account. Admin marks back-office staff: admins handle
// reviews, non-admins are the only valid order buyers and review owners.
type User struct {
	ID int64 // Assigned by the user repository, starting at 1, never reused.
	Person
	Admin bool
}
