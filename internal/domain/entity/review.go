package entity

import "time"

// Review is feedback from a customer about exactly one restaurant or driver,
// optionally picked up by a staff member who processes it.
type Review struct {
	ID        int64 // Assigned by the review repository, starting at 1, never reused.
	OwnerID   int64 // The reviewer. Always a non-admin user.
	HandlerID int64 // The staff member processing the review. Zero until assigned; always an admin when set.
	Target    ReviewTarget
	Rating    int // Star rating, 1 to 5 inclusive.
	Text      string
	CreatedAt time.Time // Set once at creation, immutable afterwards.
}

// HasHandler reports whether a staff member picked the review up.
func (r *Review) HasHandler() bool {
	return r.HandlerID != 0
}
