package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fooddesk/config"
	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
	"fooddesk/internal/infra/memory"
	"fooddesk/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(allowForeignDishes bool) *config.Config {
	cfg := &config.Config{}
	cfg.Store.AllowForeignDishes = allowForeignDishes

	return cfg
}

// storeFixtures wires every service against fresh in-memory repositories.
// The repositories are the unit under the services, so no mocks are used.
type storeFixtures struct {
	users       usecase.UserUsecase
	restaurants usecase.RestaurantUsecase
	menu        usecase.MenuUsecase
	drivers     usecase.DriverUsecase
	orders      usecase.OrderUsecase
	reviews     usecase.ReviewUsecase

	userRepo   repository.UserRepository
	dishRepo   repository.DishRepository
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	chatRepo   repository.ChatRepository
}

func createTestStore(t *testing.T) storeFixtures {
	t.Helper()

	return createTestStoreWithConfig(t, newTestConfig(false))
}

func createTestStoreWithConfig(t *testing.T, cfg *config.Config) storeFixtures {
	t.Helper()

	logger := newDiscardLogger()

	userRepo := memory.NewUserRepository()
	restaurantRepo := memory.NewRestaurantRepository()
	driverRepo := memory.NewDriverRepository()
	dishRepo := memory.NewDishRepository()
	orderRepo := memory.NewOrderRepository()
	reviewRepo := memory.NewReviewRepository()
	chatRepo := memory.NewChatRepository()

	return storeFixtures{
		users:       NewUserService(userRepo, orderRepo, reviewRepo, logger),
		restaurants: NewRestaurantService(restaurantRepo, dishRepo, orderRepo, reviewRepo, logger),
		menu:        NewMenuService(dishRepo, restaurantRepo, orderRepo, logger),
		drivers:     NewDriverService(driverRepo, orderRepo, reviewRepo, logger),
		orders:      NewOrderService(orderRepo, chatRepo, userRepo, restaurantRepo, driverRepo, dishRepo, cfg, logger),
		reviews:     NewReviewService(reviewRepo, userRepo, restaurantRepo, driverRepo, logger),
		userRepo:    userRepo,
		dishRepo:    dishRepo,
		orderRepo:   orderRepo,
		reviewRepo:  reviewRepo,
		chatRepo:    chatRepo,
	}
}

func (fx storeFixtures) customer(t *testing.T, login string) *entity.User {
	t.Helper()

	user, err := fx.users.CreateUser(context.Background(), &usecase.UserInput{Login: login, Name: login})
	require.NoError(t, err)

	return user
}

func (fx storeFixtures) admin(t *testing.T, login string) *entity.User {
	t.Helper()

	user, err := fx.users.CreateUser(context.Background(), &usecase.UserInput{Login: login, Name: login, Admin: true})
	require.NoError(t, err)

	return user
}

func (fx storeFixtures) restaurant(t *testing.T, name string) *entity.Restaurant {
	t.Helper()

	resto, err := fx.restaurants.CreateRestaurant(context.Background(), &usecase.RestaurantInput{
		Login: name, Name: name,
	})
	require.NoError(t, err)

	return resto
}

func (fx storeFixtures) dish(t *testing.T, name string, price float64, restaurantID int64) *entity.Dish {
	t.Helper()

	dish, err := fx.menu.CreateDish(context.Background(), &usecase.DishInput{
		Name: name, Price: price, RestaurantID: restaurantID,
	})
	require.NoError(t, err)

	return dish
}

func (fx storeFixtures) driver(t *testing.T, login string) *entity.Driver {
	t.Helper()

	driver, err := fx.drivers.CreateDriver(context.Background(), &usecase.DriverInput{
		Login: login, Name: login, LicenceNumber: "LT-0001", Vehicle: entity.VehicleCar,
	})
	require.NoError(t, err)

	return driver
}
