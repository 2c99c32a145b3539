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

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	orderRepo      repository.OrderRepository
	reviewRepo     repository.ReviewRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		orderRepo:      orderRepo,
		reviewRepo:     reviewRepo,
		logger:         logger,
	}
}

// CreateRestaurant stores a new restaurant account.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		Person: entity.Person{
			Login:    input.Login,
			Password: input.Password,
			Name:     input.Name,
			Surname:  input.Surname,
			Phone:    input.Phone,
			Address:  input.Address,
		},
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	srv.logger.Info("Restaurant created", "restaurantID", restaurant.ID, "name", restaurant.Name)

	return restaurant, nil
}

// ListRestaurants returns every restaurant account.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	return srv.restaurantRepo.List(ctx)
}

// GetRestaurant retrieves a single restaurant account.
func (srv *restaurantService) GetRestaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// UpdateRestaurant replaces the stored account wholesale. Last write wins.
func (srv *restaurantService) UpdateRestaurant(ctx context.Context, id int64, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		ID: id,
		Person: entity.Person{
			Login:    input.Login,
			Password: input.Password,
			Name:     input.Name,
			Surname:  input.Surname,
			Phone:    input.Phone,
			Address:  input.Address,
		},
	}

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	srv.logger.Info("Restaurant updated", "restaurantID", id)

	return restaurant, nil
}

// DeleteRestaurant removes the restaurant and cascade-deletes its menu.
// The delete is refused while orders or reviews still reference the
// restaurant; the menu is only touched once the delete is known to proceed.
func (srv *restaurantService) DeleteRestaurant(ctx context.Context, id int64) (bool, error) {
	referenced, err := srv.restaurantReferenced(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		return false, errors.Wrap(domainerrors.ErrEntityInUse, "restaurant is referenced by orders or reviews")
	}

	deleted, err := srv.restaurantRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete restaurant")
	}
	if !deleted {
		return false, nil
	}

	menu, err := srv.dishRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return true, errors.Wrap(err, "failed to list menu for cascade")
	}
	for _, dish := range menu {
		if _, err := srv.dishRepo.DeleteByID(ctx, dish.ID); err != nil {
			return true, errors.Wrap(err, "failed to cascade-delete dish")
		}
	}

	srv.logger.Info("Restaurant deleted", "restaurantID", id, "cascadedDishes", len(menu))

	return true, nil
}

// OrdersFor returns the restaurant's order backlog.
func (srv *restaurantService) OrdersFor(ctx context.Context, restaurantID int64) ([]*entity.Order, error) {
	return srv.orderRepo.ListByRestaurant(ctx, restaurantID)
}

func (srv *restaurantService) restaurantReferenced(ctx context.Context, id int64) (bool, error) {
	orders, err := srv.orderRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to list orders")
	}
	if len(orders) > 0 {
		return true, nil
	}

	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list reviews")
	}
	for _, r := range reviews {
		if r.Target.Kind == entity.TargetRestaurant && r.Target.RestaurantID == id {
			return true, nil
		}
	}

	return false, nil
}
