// Package mocks provides mock implementations for testing user use case consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/crowdfund/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// LoadAll mocks the LoadAll method of UserRepository.
func (m *MockUserRepository) LoadAll(ctx context.Context) []*domain.User {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.User)
}

// SaveAll mocks the SaveAll method of UserRepository.
func (m *MockUserRepository) SaveAll(ctx context.Context, users []*domain.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

// MockUseCase is a mock implementation of UseCase.
type MockUseCase struct {
	mock.Mock
}

// IsRegistered mocks the IsRegistered method of UseCase.
func (m *MockUseCase) IsRegistered(ctx context.Context, email string) bool {
	args := m.Called(ctx, email)
	return args.Bool(0)
}

// Register mocks the Register method of UseCase.
func (m *MockUseCase) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Authenticate mocks the Authenticate method of UseCase.
func (m *MockUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetByEmail mocks the GetByEmail method of UseCase.
func (m *MockUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
