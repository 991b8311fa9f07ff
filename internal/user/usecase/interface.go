// Package usecase implements the user directory: registration, credential checks and
// lookups over the persisted user set.
package usecase

import (
	"context"

	"github.com/allisson/crowdfund/internal/user/domain"
)

// UserRepository defines the persistence operations over the whole user set.
type UserRepository interface {
	LoadAll(ctx context.Context) []*domain.User
	SaveAll(ctx context.Context, users []*domain.User) error
}

// UseCase defines the interface for user directory operations.
type UseCase interface {
	// IsRegistered reports whether a user with email exists, ignoring case.
	IsRegistered(ctx context.Context, email string) bool
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	// Authenticate returns domain.ErrInvalidCredentials for an unknown email and for a
	// wrong password alike.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
