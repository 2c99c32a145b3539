// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fooddesk/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations.
// ListCustomers and ListStaff are the partitions the ordering and review
// screens bind to: customers are the valid order buyers and review owners,
// staff are the valid review handlers.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *UserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input *UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)

	ListCustomers(ctx context.Context) ([]*entity.User, error)
	ListStaff(ctx context.Context) ([]*entity.User, error)
}

// --- Input DTOs ---

// UserInput defines the data required to create or fully replace a user.
// Primitive field validation (blank checks, phone format) happens in the
// presentation layer before it reaches the store.
type UserInput struct {
	Login    string
	Password string
	Name     string
	Surname  string
	Phone    string
	Address  string
	Admin    bool
}
