package impl

import (
	"context"
	"testing"

	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateAndGet(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	created, err := fx.users.CreateUser(ctx, &usecase.UserInput{
		Login: "jonas", Name: "Jonas", Surname: "Jonaitis", Phone: "+37060000001",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := fx.users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jonas Jonaitis", got.FullName())
	assert.False(t, got.Admin)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestStore(t)

	_, err := fx.users.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_UpdateUser_WholesaleReplace(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	jonas := fx.customer(t, "jonas")

	updated, err := fx.users.UpdateUser(ctx, jonas.ID, &usecase.UserInput{
		Login: "jonas2", Name: "Jonas", Admin: true,
	})
	require.NoError(t, err)
	assert.Equal(t, jonas.ID, updated.ID)
	assert.Equal(t, "jonas2", updated.Login)
	assert.True(t, updated.Admin)
	// Fields absent from the input are replaced, not merged.
	assert.Empty(t, updated.Surname)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestStore(t)

	_, err := fx.users.UpdateUser(context.Background(), 7, &usecase.UserInput{Login: "ghost"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_Partitions(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	jonas := fx.customer(t, "jonas")
	ona := fx.customer(t, "ona")
	boss := fx.admin(t, "boss")

	customers, err := fx.users.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, jonas.ID, customers[0].ID)
	assert.Equal(t, ona.ID, customers[1].ID)

	staff, err := fx.users.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, boss.ID, staff[0].ID)

	all, err := fx.users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	jonas := fx.customer(t, "jonas")

	deleted, err := fx.users.DeleteUser(ctx, jonas.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again reports that nothing was removed.
	deleted, err = fx.users.DeleteUser(ctx, jonas.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserService_DeleteUser_RefusedWhileBuyingOrders(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	burger := fx.dish(t, "Burger", 8.5, resto.ID)
	jonas := fx.customer(t, "jonas")

	_, err := fx.orders.PlaceOrder(ctx, &usecase.OrderInput{
		BuyerID: jonas.ID, RestaurantID: resto.ID, DishIDs: []int64{burger.ID},
	})
	require.NoError(t, err)

	_, err = fx.users.DeleteUser(ctx, jonas.ID)
	require.ErrorIs(t, err, domainerrors.ErrEntityInUse)

	_, err = fx.users.GetUser(ctx, jonas.ID)
	assert.NoError(t, err)
}

func TestUserService_DeleteUser_RefusedWhileHandlingReviews(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	jonas := fx.customer(t, "jonas")
	boss := fx.admin(t, "boss")

	_, err := fx.reviews.SubmitReview(ctx, &usecase.ReviewInput{
		OwnerID: jonas.ID, HandlerID: boss.ID, RestaurantID: resto.ID, Rating: 4,
	})
	require.NoError(t, err)

	_, err = fx.users.DeleteUser(ctx, boss.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityInUse)

	_, err = fx.users.DeleteUser(ctx, jonas.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityInUse)
}
