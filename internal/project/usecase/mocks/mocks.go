// Package mocks provides mock implementations for testing project use case consumers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/crowdfund/internal/project/domain"
)

func projectsOrNil(args mock.Arguments) ([]*domain.Project, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func projectOrNil(args mock.Arguments) (*domain.Project, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

// LoadAll mocks the LoadAll method of ProjectRepository.
func (m *MockProjectRepository) LoadAll(ctx context.Context) []*domain.Project {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Project)
}

// SaveAll mocks the SaveAll method of ProjectRepository.
func (m *MockProjectRepository) SaveAll(ctx context.Context, projects []*domain.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// MockUserLookup is a mock implementation of UserLookup.
type MockUserLookup struct {
	mock.Mock
}

// IsRegistered mocks the IsRegistered method of UserLookup.
func (m *MockUserLookup) IsRegistered(ctx context.Context, email string) bool {
	args := m.Called(ctx, email)
	return args.Bool(0)
}

// MockLedgerUseCase is a mock implementation of LedgerUseCase.
type MockLedgerUseCase struct {
	mock.Mock
}

// Create mocks the Create method of LedgerUseCase.
func (m *MockLedgerUseCase) Create(
	ctx context.Context,
	owner string,
	input domain.CreateProjectInput,
) (*domain.Project, error) {
	return projectOrNil(m.Called(ctx, owner, input))
}

// List mocks the List method of LedgerUseCase.
func (m *MockLedgerUseCase) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, filter))
}

// ListOpen mocks the ListOpen method of LedgerUseCase.
func (m *MockLedgerUseCase) ListOpen(ctx context.Context, owner string) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, owner))
}

// Get mocks the Get method of LedgerUseCase.
func (m *MockLedgerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return projectOrNil(m.Called(ctx, id))
}

// Edit mocks the Edit method of LedgerUseCase.
func (m *MockLedgerUseCase) Edit(
	ctx context.Context,
	owner string,
	id uuid.UUID,
	input domain.EditProjectInput,
) (*domain.Project, error) {
	return projectOrNil(m.Called(ctx, owner, id, input))
}

// Delete mocks the Delete method of LedgerUseCase.
func (m *MockLedgerUseCase) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

// Donate mocks the Donate method of LedgerUseCase.
func (m *MockLedgerUseCase) Donate(
	ctx context.Context,
	donor string,
	id uuid.UUID,
	amount float64,
) (*domain.Project, error) {
	return projectOrNil(m.Called(ctx, donor, id, amount))
}

// Close mocks the Close method of LedgerUseCase.
func (m *MockLedgerUseCase) Close(ctx context.Context, owner string, id uuid.UUID) (*domain.Project, error) {
	return projectOrNil(m.Called(ctx, owner, id))
}

// MockQueryUseCase is a mock implementation of QueryUseCase.
type MockQueryUseCase struct {
	mock.Mock
}

// SearchByTitle mocks the SearchByTitle method of QueryUseCase.
func (m *MockQueryUseCase) SearchByTitle(ctx context.Context, substring string) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, substring))
}

// SearchByStartDate mocks the SearchByStartDate method of QueryUseCase.
func (m *MockQueryUseCase) SearchByStartDate(ctx context.Context, date string) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, date))
}

// ListByOwner mocks the ListByOwner method of QueryUseCase.
func (m *MockQueryUseCase) ListByOwner(ctx context.Context, email string) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, email))
}

// ListByStatus mocks the ListByStatus method of QueryUseCase.
func (m *MockQueryUseCase) ListByStatus(ctx context.Context, closed bool) ([]*domain.Project, error) {
	return projectsOrNil(m.Called(ctx, closed))
}
