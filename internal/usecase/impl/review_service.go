package impl

import (
	"context"
	"log/slog"
	"time"

	"fooddesk/internal/domain/entity"
	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/domain/repository"
	"fooddesk/internal/usecase"

	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo     repository.ReviewRepository
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	driverRepo     repository.DriverRepository
	logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	driverRepo repository.DriverRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:     reviewRepo,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		driverRepo:     driverRepo,
		logger:         logger,
	}
}

// SubmitReview validates the input, resolves the target exclusive-or rule
// and stores the review with its creation timestamp. Validation runs to
// completion before anything is mutated.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.ReviewInput) (*entity.Review, error) {
	target, err := srv.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		OwnerID:   input.OwnerID,
		HandlerID: input.HandlerID,
		Target:    target,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: time.Now(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.logger.Info("Review submitted",
		"reviewID", review.ID,
		"target", review.Target.Kind,
		"rating", review.Rating,
	)

	return review, nil
}

// ListReviews returns every review.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return srv.reviewRepo.List(ctx)
}

// GetReview retrieves a single review.
func (srv *reviewService) GetReview(ctx context.Context, id int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// UpdateReview replaces the stored review wholesale, re-running the same
// validation as on create and preserving the creation timestamp.
func (srv *reviewService) UpdateReview(ctx context.Context, id int64, input *usecase.ReviewInput) (*entity.Review, error) {
	existing, err := srv.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := srv.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        id,
		OwnerID:   input.OwnerID,
		HandlerID: input.HandlerID,
		Target:    target,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: existing.CreatedAt,
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	srv.logger.Info("Review updated", "reviewID", id)

	return review, nil
}

// DeleteReview removes the review. Deleting a missing id reports false.
func (srv *reviewService) DeleteReview(ctx context.Context, id int64) (bool, error) {
	deleted, err := srv.reviewRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete review")
	}
	if deleted {
		srv.logger.Info("Review deleted", "reviewID", id)
	}

	return deleted, nil
}

// resolve checks the rating, the owner and handler roles, and the target
// exclusive-or rule. Nothing is mutated here.
func (srv *reviewService) resolve(ctx context.Context, input *usecase.ReviewInput) (entity.ReviewTarget, error) {
	var none entity.ReviewTarget

	if err := checkInput(input); err != nil {
		return none, err
	}

	target, err := srv.resolveTarget(ctx, input.RestaurantID, input.DriverID)
	if err != nil {
		return none, err
	}

	owner, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return none, errors.Wrap(domainerrors.ErrNotFound, "review owner not found")
		}

		return none, errors.Wrap(err, "failed to find owner")
	}
	if owner.Admin {
		return none, errors.Wrap(domainerrors.ErrValidationFailed, "review owner must not be an admin")
	}

	if input.HandlerID != 0 {
		handler, err := srv.userRepo.FindByID(ctx, input.HandlerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return none, errors.Wrap(domainerrors.ErrNotFound, "review handler not found")
			}

			return none, errors.Wrap(err, "failed to find handler")
		}
		if !handler.Admin {
			return none, errors.Wrap(domainerrors.ErrValidationFailed, "review handler must be an admin")
		}
	}

	return target, nil
}

// resolveTarget enforces the exclusive-or targeting rule: exactly one of
// restaurantID and driverID must be set, and the referenced record must be
// live.
func (srv *reviewService) resolveTarget(ctx context.Context, restaurantID, driverID int64) (entity.ReviewTarget, error) {
	var none entity.ReviewTarget

	switch {
	case restaurantID != 0 && driverID != 0:
		return none, errors.Wrap(domainerrors.ErrReviewTargetConflict, "both restaurant and driver given")
	case restaurantID == 0 && driverID == 0:
		return none, errors.Wrap(domainerrors.ErrReviewTargetConflict, "neither restaurant nor driver given")
	case restaurantID != 0:
		if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return none, errors.Wrap(domainerrors.ErrNotFound, "review restaurant not found")
			}

			return none, errors.Wrap(err, "failed to find restaurant")
		}

		return entity.RestaurantTarget(restaurantID), nil
	default:
		if _, err := srv.driverRepo.FindByID(ctx, driverID); err != nil {
			if errors.Is(err, repository.ErrDriverNotFound) {
				return none, errors.Wrap(domainerrors.ErrNotFound, "review driver not found")
			}

			return none, errors.Wrap(err, "failed to find driver")
		}

		return entity.DriverTarget(driverID), nil
	}
}
