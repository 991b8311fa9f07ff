package usecase

import (
	"context"
	"time"

	"github.com/allisson/crowdfund/internal/metrics"
	"github.com/allisson/crowdfund/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", operation, status)
	u.metrics.RecordDuration(ctx, "users", operation, time.Since(start), status)
}

// IsRegistered is a lookup and is not instrumented.
func (u *userUseCaseWithMetrics) IsRegistered(ctx context.Context, email string) bool {
	return u.next.IsRegistered(ctx, email)
}

// Register records metrics for user registration.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input domain.RegisterUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)
	u.record(ctx, "user_register", start, err)
	return user, err
}

// Authenticate records metrics for credential checks.
func (u *userUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Authenticate(ctx, email, password)
	u.record(ctx, "user_authenticate", start, err)
	return user, err
}

// GetByEmail records metrics for user lookups.
func (u *userUseCaseWithMetrics) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByEmail(ctx, email)
	u.record(ctx, "user_get", start, err)
	return user, err
}
