package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review storage.
type ReviewRepository interface {
	Watchable

	Create(ctx context.Context, review *entity.Review) error
	List(ctx context.Context) ([]*entity.Review, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
