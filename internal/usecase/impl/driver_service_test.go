package impl

import (
	"context"
	"testing"
	"time"

	"fooddesk/internal/domain/entity"
	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverService_CreateAndGet(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	born := time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC)
	created, err := fx.drivers.CreateDriver(ctx, &usecase.DriverInput{
		Login: "petras", Name: "Petras", LicenceNumber: "LT-0001",
		BirthDate: born, Vehicle: entity.VehicleBike,
	})
	require.NoError(t, err)

	got, err := fx.drivers.GetDriver(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleBike, got.Vehicle)
	assert.True(t, got.BirthDate.Equal(born))
}

func TestDriverService_CreateDriver_RejectsUnknownVehicle(t *testing.T) {
	fx := createTestStore(t)

	_, err := fx.drivers.CreateDriver(context.Background(), &usecase.DriverInput{
		Login: "petras", Vehicle: entity.VehicleType("SKATEBOARD"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDriverService_UpdateDriver(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	driver := fx.driver(t, "petras")

	updated, err := fx.drivers.UpdateDriver(ctx, driver.ID, &usecase.DriverInput{
		Login: "petras", Name: "Petras", LicenceNumber: "LT-0002", Vehicle: entity.VehicleByFoot,
	})
	require.NoError(t, err)
	assert.Equal(t, driver.ID, updated.ID)
	assert.Equal(t, "LT-0002", updated.LicenceNumber)
	assert.Equal(t, entity.VehicleByFoot, updated.Vehicle)

	_, err = fx.drivers.UpdateDriver(ctx, 99, &usecase.DriverInput{
		Login: "ghost", Vehicle: entity.VehicleCar,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDriverService_DeleteDriver(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	driver := fx.driver(t, "petras")

	deleted, err := fx.drivers.DeleteDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = fx.drivers.DeleteDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDriverService_DeleteDriver_RefusedWhileAssigned(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	resto := fx.restaurant(t, "Resto One")
	burger := fx.dish(t, "Burger", 8.5, resto.ID)
	jonas := fx.customer(t, "jonas")
	driver := fx.driver(t, "petras")

	_, err := fx.orders.PlaceOrder(ctx, &usecase.OrderInput{
		BuyerID: jonas.ID, RestaurantID: resto.ID, DriverID: driver.ID,
		DishIDs: []int64{burger.ID},
	})
	require.NoError(t, err)

	_, err = fx.drivers.DeleteDriver(ctx, driver.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityInUse)
}

func TestDriverService_DeleteDriver_RefusedWhileReviewed(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	jonas := fx.customer(t, "jonas")
	driver := fx.driver(t, "petras")

	_, err := fx.reviews.SubmitReview(ctx, &usecase.ReviewInput{
		OwnerID: jonas.ID, DriverID: driver.ID, Rating: 5,
	})
	require.NoError(t, err)

	_, err = fx.drivers.DeleteDriver(ctx, driver.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityInUse)
}
