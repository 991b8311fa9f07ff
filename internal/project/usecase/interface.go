// Package usecase implements the project ledger and the read-only project queries.
// Every ledger operation loads the full project set, acts on it and persists the
// full set back when something changed.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/crowdfund/internal/project/domain"
)

// ProjectRepository defines the persistence operations over the whole project set.
type ProjectRepository interface {
	LoadAll(ctx context.Context) []*domain.Project
	SaveAll(ctx context.Context, projects []*domain.Project) error
}

// UserLookup resolves whether an email belongs to a registered user.
type UserLookup interface {
	IsRegistered(ctx context.Context, email string) bool
}

// LedgerUseCase defines the project lifecycle and donation operations. Owner and donor
// arguments are the email of an already authenticated user.
type LedgerUseCase interface {
	Create(ctx context.Context, owner string, input domain.CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Project, error)
	// ListOpen returns projects that still accept edits and donations, optionally
	// restricted to owner.
	ListOpen(ctx context.Context, owner string) ([]*domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Edit(
		ctx context.Context,
		owner string,
		id uuid.UUID,
		input domain.EditProjectInput,
	) (*domain.Project, error)
	// Delete removes the project whether it is open or closed.
	Delete(ctx context.Context, owner string, id uuid.UUID) error
	Donate(ctx context.Context, donor string, id uuid.UUID, amount float64) (*domain.Project, error)
	Close(ctx context.Context, owner string, id uuid.UUID) (*domain.Project, error)
}

// QueryUseCase defines read-only searches over the project set. Results keep stored order.
type QueryUseCase interface {
	SearchByTitle(ctx context.Context, substring string) ([]*domain.Project, error)
	// SearchByStartDate matches a YYYY-MM-DD date exactly.
	SearchByStartDate(ctx context.Context, date string) ([]*domain.Project, error)
	ListByOwner(ctx context.Context, email string) ([]*domain.Project, error)
	ListByStatus(ctx context.Context, closed bool) ([]*domain.Project, error)
}
