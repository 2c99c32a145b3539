package usecase

import (
	"context"

	"fooddesk/internal/domain/entity"
)

// ReviewUsecase defines the interface for review-related business operations.
// Every create and update resolves the target exclusive-or rule: a review is
// about exactly one restaurant or exactly one driver, never both, never
// neither.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *ReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	GetReview(ctx context.Context, id int64) (*entity.Review, error)
	UpdateReview(ctx context.Context, id int64, input *ReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// ReviewInput defines the data required to submit or fully replace a review.
// Exactly one of RestaurantID and DriverID must be set.
type ReviewInput struct {
	OwnerID      int64 `validate:"required"`
	HandlerID    int64 // Optional; zero until a staff member picks the review up.
	RestaurantID int64 // Target, variant one.
	DriverID     int64 // Target, variant two.
	Rating       int   `validate:"min=1,max=5"`
	Text         string
}
