package usecase

import (
	"context"
	"strings"

	"github.com/allisson/crowdfund/internal/project/domain"
)

// queryUseCase implements QueryUseCase.
type queryUseCase struct {
	projectRepo ProjectRepository
}

// NewQueryUseCase creates the read-only project queries.
func NewQueryUseCase(projectRepo ProjectRepository) QueryUseCase {
	return &queryUseCase{
		projectRepo: projectRepo,
	}
}

func (q *queryUseCase) filter(ctx context.Context, keep func(*domain.Project) bool) []*domain.Project {
	result := []*domain.Project{}
	for _, p := range q.projectRepo.LoadAll(ctx) {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}

// SearchByTitle returns projects whose title contains substring, ignoring case.
func (q *queryUseCase) SearchByTitle(ctx context.Context, substring string) ([]*domain.Project, error) {
	needle := strings.ToLower(substring)
	return q.filter(ctx, func(p *domain.Project) bool {
		return strings.Contains(strings.ToLower(p.Title), needle)
	}), nil
}

// SearchByStartDate returns projects started on date.
func (q *queryUseCase) SearchByStartDate(ctx context.Context, date string) ([]*domain.Project, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return q.filter(ctx, func(p *domain.Project) bool {
		return !p.StartDate.IsZero() && domain.SameDay(p.StartDate, day)
	}), nil
}

// ListByOwner returns projects created by email.
func (q *queryUseCase) ListByOwner(ctx context.Context, email string) ([]*domain.Project, error) {
	return q.filter(ctx, func(p *domain.Project) bool {
		return p.IsOwnedBy(email)
	}), nil
}

// ListByStatus returns closed projects when closed is true, open ones otherwise.
func (q *queryUseCase) ListByStatus(ctx context.Context, closed bool) ([]*domain.Project, error) {
	return q.filter(ctx, func(p *domain.Project) bool {
		return p.Closed == closed
	}), nil
}
