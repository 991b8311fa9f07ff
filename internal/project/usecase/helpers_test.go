package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/allisson/crowdfund/internal/project/domain"
	projectMocks "github.com/allisson/crowdfund/internal/project/usecase/mocks"
)

var (
	_ ProjectRepository = (*projectMocks.MockProjectRepository)(nil)
	_ UserLookup        = (*projectMocks.MockUserLookup)(nil)
	_ LedgerUseCase     = (*projectMocks.MockLedgerUseCase)(nil)
	_ QueryUseCase      = (*projectMocks.MockQueryUseCase)(nil)
)

const (
	alice = "alice@example.com"
	bob   = "bob@example.com"
	carol = "carol@example.com"
)

// fixedNow is 2026-10-19 10:30 UTC.
func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryProjectRepository keeps a persisted copy of the project set so that
// mutations are only visible after SaveAll.
type memoryProjectRepository struct {
	stored  []*domain.Project
	saves   int
	saveErr error
}

func cloneAll(projects []*domain.Project) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Clone())
	}
	return out
}

func (r *memoryProjectRepository) LoadAll(ctx context.Context) []*domain.Project {
	return cloneAll(r.stored)
}

func (r *memoryProjectRepository) SaveAll(ctx context.Context, projects []*domain.Project) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.stored = cloneAll(projects)
	return nil
}

// staticUsers is a UserLookup over a fixed set of emails.
type staticUsers []string

func (s staticUsers) IsRegistered(ctx context.Context, email string) bool {
	for _, e := range s {
		if strings.EqualFold(e, strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}

func newTestLedger(repo ProjectRepository, policy domain.AutoClosePolicy) LedgerUseCase {
	return NewLedgerUseCase(repo, staticUsers{alice, bob, carol}, policy, testLogger(), fixedNow)
}

func ptr[T any](v T) *T {
	return &v
}
