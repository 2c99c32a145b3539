package impl

import (
	"context"
	"log/slog"

	"fooddesk/internal/domain/entity"
	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/domain/repository"
	"fooddesk/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo   repository.UserRepository
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// NewUserService is the constructor for userService. The order and review
// repositories are consulted by the delete guard.
func NewUserService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// CreateUser stores a new user account.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	user := &entity.User{
		Person: entity.Person{
			Login:    input.Login,
			Password: input.Password,
			Name:     input.Name,
			Surname:  input.Surname,
			Phone:    input.Phone,
			Address:  input.Address,
		},
		Admin: input.Admin,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created", "userID", user.ID, "admin", user.Admin)

	return user, nil
}

// ListUsers returns every user account.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.List(ctx)
}

// GetUser retrieves a single user account.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser replaces the stored account wholesale. Last write wins.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UserInput) (*entity.User, error) {
	user := &entity.User{
		ID: id,
		Person: entity.Person{
			Login:    input.Login,
			Password: input.Password,
			Name:     input.Name,
			Surname:  input.Surname,
			Phone:    input.Phone,
			Address:  input.Address,
		},
		Admin: input.Admin,
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.logger.Info("User updated", "userID", id)

	return user, nil
}

// DeleteUser removes the account unless a live order or review still
// references it.
func (srv *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	referenced, err := srv.userReferenced(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		return false, errors.Wrap(domainerrors.ErrEntityInUse, "user is referenced by orders or reviews")
	}

	deleted, err := srv.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete user")
	}
	if deleted {
		srv.logger.Info("User deleted", "userID", id)
	}

	return deleted, nil
}

// ListCustomers returns the non-admin accounts: the valid order buyers and
// review owners.
func (srv *userService) ListCustomers(ctx context.Context) ([]*entity.User, error) {
	return srv.partition(ctx, false)
}

// ListStaff returns the admin accounts: the valid review handlers.
func (srv *userService) ListStaff(ctx context.Context) ([]*entity.User, error) {
	return srv.partition(ctx, true)
}

func (srv *userService) partition(ctx context.Context, admin bool) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u.Admin == admin {
			out = append(out, u)
		}
	}

	return out, nil
}

func (srv *userService) userReferenced(ctx context.Context, id int64) (bool, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list orders")
	}
	for _, o := range orders {
		if o.BuyerID == id {
			return true, nil
		}
	}

	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list reviews")
	}
	for _, r := range reviews {
		if r.OwnerID == id || r.HandlerID == id {
			return true, nil
		}
	}

	return false, nil
}
