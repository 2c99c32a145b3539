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

// driverService implements the DriverUsecase interface.
type driverService struct {
	driverRepo repository.DriverRepository
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// NewDriverService is the constructor for driverService.
func NewDriverService(
	driverRepo repository.DriverRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.DriverUsecase {
	return &driverService{
		driverRepo: driverRepo,
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// CreateDriver stores a new driver account.
func (srv *driverService) CreateDriver(ctx context.Context, input *usecase.DriverInput) (*entity.Driver, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	driver := srv.fromInput(0, input)
	if err := srv.driverRepo.Create(ctx, driver); err != nil {
		return nil, errors.Wrap(err, "failed to create driver")
	}

	srv.logger.Info("Driver created", "driverID", driver.ID, "vehicle", driver.Vehicle)

	return driver, nil
}

// ListDrivers returns every driver account.
func (srv *driverService) ListDrivers(ctx context.Context) ([]*entity.Driver, error) {
	return srv.driverRepo.List(ctx)
}

// GetDriver retrieves a single driver account.
func (srv *driverService) GetDriver(ctx context.Context, id int64) (*entity.Driver, error) {
	driver, err := srv.driverRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "driver not found")
		}

		return nil, errors.Wrap(err, "failed to find driver")
	}

	return driver, nil
}

// UpdateDriver replaces the stored account wholesale. Last write wins.
func (srv *driverService) UpdateDriver(ctx context.Context, id int64, input *usecase.DriverInput) (*entity.Driver, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	driver := srv.fromInput(id, input)
	if err := srv.driverRepo.Update(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "driver not found")
		}

		return nil, errors.Wrap(err, "failed to update driver")
	}

	srv.logger.Info("Driver updated", "driverID", id)

	return driver, nil
}

// DeleteDriver removes the account unless an order or review still
// references it.
func (srv *driverService) DeleteDriver(ctx context.Context, id int64) (bool, error) {
	referenced, err := srv.driverReferenced(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		return false, errors.Wrap(domainerrors.ErrEntityInUse, "driver is referenced by orders or reviews")
	}

	deleted, err := srv.driverRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete driver")
	}
	if deleted {
		srv.logger.Info("Driver deleted", "driverID", id)
	}

	return deleted, nil
}

func (srv *driverService) fromInput(id int64, input *usecase.DriverInput) *entity.Driver {
	return &entity.Driver{
		ID: id,
		Person: entity.Person{
			Login:    input.Login,
			Password: input.Password,
			Name:     input.Name,
			Surname:  input.Surname,
			Phone:    input.Phone,
			Address:  input.Address,
		},
		LicenceNumber: input.LicenceNumber,
		BirthDate:     input.BirthDate,
		Vehicle:       input.Vehicle,
	}
}

func (srv *driverService) driverReferenced(ctx context.Context, id int64) (bool, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list orders")
	}
	for _, o := range orders {
		if o.DriverID == id {
			return true, nil
		}
	}

	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list reviews")
	}
	for _, r := range reviews {
		if r.Target.Kind == entity.TargetDriver && r.Target.DriverID == id {
			return true, nil
		}
	}

	return false, nil
}
