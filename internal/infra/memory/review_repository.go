package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type reviewRepository struct {
	*collection[*entity.Review]
}

// NewReviewRepository creates an empty in-memory review repository with its
// id counter at 1.
func NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{
		collection: newCollection(
			func(rv *entity.Review) int64 { return rv.ID },
			func(rv *entity.Review, id int64) { rv.ID = id },
		),
	}
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.create(review)

	return nil
}

func (r *reviewRepository) List(_ context.Context) ([]*entity.Review, error) {
	return r.list(), nil
}

func (r *reviewRepository) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	review, ok := r.find(id)
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return review, nil
}

func (r *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	if !r.update(review) {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}
