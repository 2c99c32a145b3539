package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type userRepository struct {
	*collection[*entity.User]
}

// NewUserRepository creates an empty in-memory user repository with its id
// counter at 1.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		collection: newCollection(
			func(u *entity.User) int64 { return u.ID },
			func(u *entity.User, id int64) { u.ID = id },
		),
	}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.create(user)

	return nil
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	return r.list(), nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.find(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	if !r.update(user) {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}
