package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/crowdfund/internal/metrics"
	"github.com/allisson/crowdfund/internal/project/domain"
)

const metricsDomain = "projects"

func recordMetrics(
	ctx context.Context,
	m metrics.BusinessMetrics,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// ledgerUseCaseWithMetrics decorates LedgerUseCase with metrics instrumentation.
type ledgerUseCaseWithMetrics struct {
	next    LedgerUseCase
	metrics metrics.BusinessMetrics
}

// NewLedgerUseCaseWithMetrics wraps a LedgerUseCase with metrics recording.
func NewLedgerUseCaseWithMetrics(useCase LedgerUseCase, m metrics.BusinessMetrics) LedgerUseCase {
	return &ledgerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for project creation.
func (l *ledgerUseCaseWithMetrics) Create(
	ctx context.Context,
	owner string,
	input domain.CreateProjectInput,
) (*domain.Project, error) {
	start := time.Now()
	project, err := l.next.Create(ctx, owner, input)
	recordMetrics(ctx, l.metrics, "project_create", start, err)
	return project, err
}

// List records metrics for project listings.
func (l *ledgerUseCaseWithMetrics) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := l.next.List(ctx, filter)
	recordMetrics(ctx, l.metrics, "project_list", start, err)
	return projects, err
}

// ListOpen records metrics for open project listings.
func (l *ledgerUseCaseWithMetrics) ListOpen(ctx context.Context, owner string) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := l.next.ListOpen(ctx, owner)
	recordMetrics(ctx, l.metrics, "project_list_open", start, err)
	return projects, err
}

// Get records metrics for project retrieval.
func (l *ledgerUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	start := time.Now()
	project, err := l.next.Get(ctx, id)
	recordMetrics(ctx, l.metrics, "project_get", start, err)
	return project, err
}

// Edit records metrics for project edits.
func (l *ledgerUseCaseWithMetrics) Edit(
	ctx context.Context,
	owner string,
	id uuid.UUID,
	input domain.EditProjectInput,
) (*domain.Project, error) {
	start := time.Now()
	project, err := l.next.Edit(ctx, owner, id, input)
	recordMetrics(ctx, l.metrics, "project_edit", start, err)
	return project, err
}

// Delete records metrics for project deletion.
func (l *ledgerUseCaseWithMetrics) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	start := time.Now()
	err := l.next.Delete(ctx, owner, id)
	recordMetrics(ctx, l.metrics, "project_delete", start, err)
	return err
}

// Donate records metrics for donations and the donated amount on success.
func (l *ledgerUseCaseWithMetrics) Donate(
	ctx context.Context,
	donor string,
	id uuid.UUID,
	amount float64,
) (*domain.Project, error) {
	start := time.Now()
	project, err := l.next.Donate(ctx, donor, id, amount)
	recordMetrics(ctx, l.metrics, "project_donate", start, err)
	if err == nil {
		l.metrics.RecordDonation(ctx, amount)
	}
	return project, err
}

// Close records metrics for explicit project closing.
func (l *ledgerUseCaseWithMetrics) Close(
	ctx context.Context,
	owner string,
	id uuid.UUID,
) (*domain.Project, error) {
	start := time.Now()
	project, err := l.next.Close(ctx, owner, id)
	recordMetrics(ctx, l.metrics, "project_close", start, err)
	return project, err
}

// queryUseCaseWithMetrics decorates QueryUseCase with metrics instrumentation.
type queryUseCaseWithMetrics struct {
	next    QueryUseCase
	metrics metrics.BusinessMetrics
}

// NewQueryUseCaseWithMetrics wraps a QueryUseCase with metrics recording.
func NewQueryUseCaseWithMetrics(useCase QueryUseCase, m metrics.BusinessMetrics) QueryUseCase {
	return &queryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// SearchByTitle records metrics for title searches.
func (q *queryUseCaseWithMetrics) SearchByTitle(
	ctx context.Context,
	substring string,
) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := q.next.SearchByTitle(ctx, substring)
	recordMetrics(ctx, q.metrics, "project_search_title", start, err)
	return projects, err
}

// SearchByStartDate records metrics for start date searches.
func (q *queryUseCaseWithMetrics) SearchByStartDate(
	ctx context.Context,
	date string,
) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := q.next.SearchByStartDate(ctx, date)
	recordMetrics(ctx, q.metrics, "project_search_start_date", start, err)
	return projects, err
}

// ListByOwner records metrics for owner listings.
func (q *queryUseCaseWithMetrics) ListByOwner(ctx context.Context, email string) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := q.next.ListByOwner(ctx, email)
	recordMetrics(ctx, q.metrics, "project_list_owner", start, err)
	return projects, err
}

// ListByStatus records metrics for status listings.
func (q *queryUseCaseWithMetrics) ListByStatus(ctx context.Context, closed bool) ([]*domain.Project, error) {
	start := time.Now()
	projects, err := q.next.ListByStatus(ctx, closed)
	recordMetrics(ctx, q.metrics, "project_list_status", start, err)
	return projects, err
}
