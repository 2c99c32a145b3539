// Command fooddesk wires the in-memory store, seeds it with a small sample
// operation and logs a summary. It exists so the store can be exercised
// end-to-end without the desktop presentation layer.
package main

import (
	"context"
	"log/slog"

	"fooddesk/config"
	"fooddesk/internal/domain/entity"
	logs "fooddesk/internal/infra/log"
	"fooddesk/internal/infra/memory"
	"fooddesk/internal/usecase"
	"fooddesk/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(seed),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		memory.NewUserRepository,
		memory.NewRestaurantRepository,
		memory.NewDriverRepository,
		memory.NewDishRepository,
		memory.NewOrderRepository,
		memory.NewReviewRepository,
		memory.NewChatRepository,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewUserService,
		impl.NewRestaurantService,
		impl.NewMenuService,
		impl.NewDriverService,
		impl.NewOrderService,
		impl.NewReviewService,
	)
}

type seedParams struct {
	fx.In

	Ctx         context.Context
	Logger      *slog.Logger
	Users       usecase.UserUsecase
	Restaurants usecase.RestaurantUsecase
	Menu        usecase.MenuUsecase
	Drivers     usecase.DriverUsecase
	Orders      usecase.OrderUsecase
	Reviews     usecase.ReviewUsecase
	Shutdowner  fx.Shutdowner
}

// seed builds one restaurant with a two-dish menu, a customer, a staff
// member and a driver, places an order and submits a review, then reports
// the totals and exits.
func seed(p seedParams) error {
	defer func() { _ = p.Shutdowner.Shutdown() }()

	resto, err := p.Restaurants.CreateRestaurant(p.Ctx, &usecase.RestaurantInput{
		Login: "resto.one", Name: "Resto One", Phone: "+37060000001", Address: "Gedimino pr. 1",
	})
	if err != nil {
		return err
	}

	burger, err := p.Menu.CreateDish(p.Ctx, &usecase.DishInput{
		Name: "Burger", Ingredients: "beef, bun, pickles", Price: 8.5, RestaurantID: resto.ID,
	})
	if err != nil {
		return err
	}
	if _, err := p.Menu.CreateDish(p.Ctx, &usecase.DishInput{
		Name: "Fries", Ingredients: "potato, salt", Price: 3.2, Vegan: true, RestaurantID: resto.ID,
	}); err != nil {
		return err
	}

	buyer, err := p.Users.CreateUser(p.Ctx, &usecase.UserInput{
		Login: "jonas", Name: "Jonas", Surname: "Jonaitis", Phone: "+37060000002",
	})
	if err != nil {
		return err
	}
	if _, err := p.Users.CreateUser(p.Ctx, &usecase.UserInput{
		Login: "admin", Name: "Ona", Surname: "Onaite", Admin: true,
	}); err != nil {
		return err
	}

	driver, err := p.Drivers.CreateDriver(p.Ctx, &usecase.DriverInput{
		Login: "driver.one", Name: "Petras", Surname: "Petraitis",
		LicenceNumber: "LT-123456", Vehicle: entity.VehicleBike,
	})
	if err != nil {
		return err
	}

	order, err := p.Orders.PlaceOrder(p.Ctx, &usecase.OrderInput{
		BuyerID:      buyer.ID,
		RestaurantID: resto.ID,
		DriverID:     driver.ID,
		DishIDs:      []int64{burger.ID, burger.ID},
		ChatMessages: "please ring the doorbell",
	})
	if err != nil {
		return err
	}

	review, err := p.Reviews.SubmitReview(p.Ctx, &usecase.ReviewInput{
		OwnerID:      buyer.ID,
		RestaurantID: resto.ID,
		Rating:       5,
		Text:         "great burgers",
	})
	if err != nil {
		return err
	}

	p.Logger.Info("Seed complete",
		"orderID", order.ID,
		"orderTotal", order.TotalPrice,
		"orderStatus", order.Status,
		"reviewID", review.ID,
		"reviewTarget", review.Target.Kind,
	)

	return nil
}
