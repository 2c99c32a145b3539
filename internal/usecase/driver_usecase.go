package usecase

import (
	"context"
	"time"

	"fooddesk/internal/domain/entity"
)

// DriverUsecase defines the interface for driver-related business operations.
type DriverUsecase interface {
	CreateDriver(ctx context.Context, input *DriverInput) (*entity.Driver, error)
	ListDrivers(ctx context.Context) ([]*entity.Driver, error)
	GetDriver(ctx context.Context, id int64) (*entity.Driver, error)
	UpdateDriver(ctx context.Context, id int64, input *DriverInput) (*entity.Driver, error)
	DeleteDriver(ctx context.Context, id int64) (bool, error)
}

// --- Input DTOs ---

// DriverInput defines the data required to create or fully replace a driver
// account. Age checks on BirthDate are the presentation layer's job.
type DriverInput struct {
	Login         string
	Password      string
	Name          string
	Surname       string
	Phone         string
	Address       string
	LicenceNumber string
	BirthDate     time.Time
	Vehicle       entity.VehicleType `validate:"oneof=CAR BIKE BY_FOOT"`
}
