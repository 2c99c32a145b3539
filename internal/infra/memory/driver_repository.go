package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type driverRepository struct {
	*collection[*entity.Driver]
}

// NewDriverRepository creates an empty in-memory driver repository with its
// id counter at 1.
func NewDriverRepository() repository.DriverRepository {
	return &driverRepository{
		collection: newCollection(
			func(d *entity.Driver) int64 { return d.ID },
			func(d *entity.Driver, id int64) { d.ID = id },
		),
	}
}

func (r *driverRepository) Create(_ context.Context, driver *entity.Driver) error {
	r.create(driver)

	return nil
}

func (r *driverRepository) List(_ context.Context) ([]*entity.Driver, error) {
	return r.list(), nil
}

func (r *driverRepository) FindByID(_ context.Context, id int64) (*entity.Driver, error) {
	driver, ok := r.find(id)
	if !ok {
		return nil, repository.ErrDriverNotFound
	}

	return driver, nil
}

func (r *driverRepository) Update(_ context.Context, driver *entity.Driver) error {
	if !r.update(driver) {
		return repository.ErrDriverNotFound
	}

	return nil
}

func (r *driverRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}
