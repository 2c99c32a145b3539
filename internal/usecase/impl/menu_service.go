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

// menuService implements the MenuUsecase interface.
type menuService struct {
	dishRepo       repository.DishRepository
	restaurantRepo repository.RestaurantRepository
	orderRepo      repository.OrderRepository
	logger         *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	dishRepo repository.DishRepository,
	restaurantRepo repository.RestaurantRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		dishRepo:       dishRepo,
		restaurantRepo: restaurantRepo,
		orderRepo:      orderRepo,
		logger:         logger,
	}
}

// CreateDish stores a new dish after checking its restaurant is live.
func (srv *menuService) CreateDish(ctx context.Context, input *usecase.DishInput) (*entity.Dish, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if err := srv.checkRestaurant(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	dish := &entity.Dish{
		Name:         input.Name,
		Ingredients:  input.Ingredients,
		Price:        input.Price,
		Spicy:        input.Spicy,
		Vegan:        input.Vegan,
		RestaurantID: input.RestaurantID,
	}

	if err := srv.dishRepo.Create(ctx, dish); err != nil {
		return nil, errors.Wrap(err, "failed to create dish")
	}

	srv.logger.Info("Dish created", "dishID", dish.ID, "restaurantID", dish.RestaurantID)

	return dish, nil
}

// ListDishes returns every dish across all restaurants.
func (srv *menuService) ListDishes(ctx context.Context) ([]*entity.Dish, error) {
	return srv.dishRepo.List(ctx)
}

// GetDish retrieves a single dish.
func (srv *menuService) GetDish(ctx context.Context, id int64) (*entity.Dish, error) {
	dish, err := srv.dishRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "dish not found")
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return dish, nil
}

// UpdateDish replaces the stored dish wholesale, re-checking the restaurant
// reference.
func (srv *menuService) UpdateDish(ctx context.Context, id int64, input *usecase.DishInput) (*entity.Dish, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	if err := srv.checkRestaurant(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	dish := &entity.Dish{
		ID:           id,
		Name:         input.Name,
		Ingredients:  input.Ingredients,
		Price:        input.Price,
		Spicy:        input.Spicy,
		Vegan:        input.Vegan,
		RestaurantID: input.RestaurantID,
	}

	if err := srv.dishRepo.Update(ctx, dish); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "dish not found")
		}

		return nil, errors.Wrap(err, "failed to update dish")
	}

	srv.logger.Info("Dish updated", "dishID", id)

	return dish, nil
}

// DeleteDish removes the dish unless an order line item still references it.
func (srv *menuService) DeleteDish(ctx context.Context, id int64) (bool, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list orders")
	}
	for _, o := range orders {
		for _, dishID := range o.DishIDs {
			if dishID == id {
				return false, errors.Wrap(domainerrors.ErrEntityInUse, "dish is referenced by order line items")
			}
		}
	}

	deleted, err := srv.dishRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete dish")
	}
	if deleted {
		srv.logger.Info("Dish deleted", "dishID", id)
	}

	return deleted, nil
}

// MenuOf returns the menu of one restaurant.
func (srv *menuService) MenuOf(ctx context.Context, restaurantID int64) ([]*entity.Dish, error) {
	return srv.dishRepo.ListByRestaurant(ctx, restaurantID)
}

// DishesFor builds a live view over the dish collection. The view holds the
// repository, not a snapshot, so every read reflects the collection as it is
// at that moment.
func (srv *menuService) DishesFor(restaurantID *int64) usecase.DishView {
	return &dishView{
		dishRepo:     srv.dishRepo,
		restaurantID: restaurantID,
	}
}

func (srv *menuService) checkRestaurant(ctx context.Context, restaurantID int64) error {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "dish restaurant not found")
		}

		return errors.Wrap(err, "failed to find restaurant")
	}

	return nil
}

// dishView implements usecase.DishView.
type dishView struct {
	dishRepo     repository.DishRepository
	restaurantID *int64 // nil means every dish is in view.
}

func (v *dishView) Dishes(ctx context.Context) ([]*entity.Dish, error) {
	if v.restaurantID == nil {
		return v.dishRepo.List(ctx)
	}

	return v.dishRepo.ListByRestaurant(ctx, *v.restaurantID)
}

func (v *dishView) Contains(ctx context.Context, dishID int64) bool {
	dish, err := v.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		return false
	}

	return v.restaurantID == nil || dish.RestaurantID == *v.restaurantID
}

func (v *dishView) Version() uint64 {
	return v.dishRepo.Version()
}
