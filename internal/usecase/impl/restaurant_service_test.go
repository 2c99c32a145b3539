package impl

import (
	"context"
	"testing"

	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantService_CreateAndList(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	one := fx.restaurant(t, "Resto One")
	two := fx.restaurant(t, "Resto Two")

	restaurants, err := fx.restaurants.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, one.ID, restaurants[0].ID)
	assert.Equal(t, two.ID, restaurants[1].ID)
}

func TestRestaurantService_UpdateRestaurant(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")

	updated, err := fx.restaurants.UpdateRestaurant(ctx, resto.ID, &usecase.RestaurantInput{
		Login: "resto-one", Name: "Resto One", Address: "Gedimino pr. 1",
	})
	require.NoError(t, err)
	assert.Equal(t, resto.ID, updated.ID)
	assert.Equal(t, "Gedimino pr. 1", updated.Address)

	_, err = fx.restaurants.UpdateRestaurant(ctx, 99, &usecase.RestaurantInput{Login: "ghost"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_DeleteRestaurant_CascadesMenu(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	other := fx.restaurant(t, "Resto Two")
	fx.dish(t, "Burger", 8.5, resto.ID)
	fx.dish(t, "Fries", 3.2, resto.ID)
	sushi := fx.dish(t, "Sushi", 12.0, other.ID)

	deleted, err := fx.restaurants.DeleteRestaurant(ctx, resto.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The whole menu goes with the restaurant; other menus are untouched.
	dishes, err := fx.menu.ListDishes(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, sushi.ID, dishes[0].ID)
}

func TestRestaurantService_DeleteRestaurant_RefusedWhileOrdered(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	burger := fx.dish(t, "Burger", 8.5, resto.ID)
	jonas := fx.customer(t, "jonas")

	_, err := fx.orders.PlaceOrder(ctx, &usecase.OrderInput{
		BuyerID: jonas.ID, RestaurantID: resto.ID, DishIDs: []int64{burger.ID},
	})
	require.NoError(t, err)

	_, err = fx.restaurants.DeleteRestaurant(ctx, resto.ID)
	require.ErrorIs(t, err, domainerrors.ErrEntityInUse)

	// Refusal leaves the menu alone.
	dishes, err := fx.menu.MenuOf(ctx, resto.ID)
	require.NoError(t, err)
	assert.Len(t, dishes, 1)
}

func TestRestaurantService_DeleteRestaurant_RefusedWhileReviewed(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	jonas := fx.customer(t, "jonas")

	_, err := fx.reviews.SubmitReview(ctx, &usecase.ReviewInput{
		OwnerID: jonas.ID, RestaurantID: resto.ID, Rating: 3,
	})
	require.NoError(t, err)

	_, err = fx.restaurants.DeleteRestaurant(ctx, resto.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityInUse)
}

func TestRestaurantService_OrdersFor(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	restoOne := fx.restaurant(t, "Resto One")
	restoTwo := fx.restaurant(t, "Resto Two")
	burger := fx.dish(t, "Burger", 8.5, restoOne.ID)
	sushi := fx.dish(t, "Sushi", 12.0, restoTwo.ID)
	jonas := fx.customer(t, "jonas")

	first, err := fx.orders.PlaceOrder(ctx, &usecase.OrderInput{
		BuyerID: jonas.ID, RestaurantID: restoOne.ID, DishIDs: []int64{burger.ID},
	})
	require.NoError(t, err)
	_, err = fx.orders.PlaceOrder(ctx, &usecase.OrderInput{
		BuyerID: jonas.ID, RestaurantID: restoTwo.ID, DishIDs: []int64{sushi.ID},
	})
	require.NoError(t, err)

	backlog, err := fx.restaurants.OrdersFor(ctx, restoOne.ID)
	require.NoError(t, err)
	require.Len(t, backlog, 1)
	assert.Equal(t, first.ID, backlog[0].ID)

	// An unknown restaurant simply has no backlog.
	backlog, err = fx.restaurants.OrdersFor(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, backlog)
}
