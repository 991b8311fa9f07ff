package app

import (
	"context"
	"fmt"

	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
	projectRepository "github.com/allisson/crowdfund/internal/project/repository"
	projectUsecase "github.com/allisson/crowdfund/internal/project/usecase"
)

// ProjectRepository returns the project repository instance.
func (c *Container) ProjectRepository(ctx context.Context) (projectUsecase.ProjectRepository, error) {
	var err error
	c.projectRepoInit.Do(func() {
		c.projectRepo, err = c.initProjectRepository(ctx)
		if err != nil {
			c.initErrors["projectRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectRepo"]; exists {
		return nil, storedErr
	}
	return c.projectRepo, nil
}

// LedgerUseCase returns the project ledger use case.
func (c *Container) LedgerUseCase(ctx context.Context) (projectUsecase.LedgerUseCase, error) {
	var err error
	c.ledgerUseCaseInit.Do(func() {
		c.ledgerUseCase, err = c.initLedgerUseCase(ctx)
		if err != nil {
			c.initErrors["ledgerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ledgerUseCase"]; exists {
		return nil, storedErr
	}
	return c.ledgerUseCase, nil
}

// QueryUseCase returns the read-only project query use case.
func (c *Container) QueryUseCase(ctx context.Context) (projectUsecase.QueryUseCase, error) {
	var err error
	c.queryUseCaseInit.Do(func() {
		c.queryUseCase, err = c.initQueryUseCase(ctx)
		if err != nil {
			c.initErrors["queryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["queryUseCase"]; exists {
		return nil, storedErr
	}
	return c.queryUseCase, nil
}

// initProjectRepository creates the project repository over the record store.
func (c *Container) initProjectRepository(ctx context.Context) (projectUsecase.ProjectRepository, error) {
	store, err := c.RecordStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get record store for project repository: %w", err)
	}
	return projectRepository.NewRecordProjectRepository(store), nil
}

// initLedgerUseCase creates the ledger use case with all its dependencies.
func (c *Container) initLedgerUseCase(ctx context.Context) (projectUsecase.LedgerUseCase, error) {
	policy, err := projectDomain.ParseAutoClosePolicy(c.config.ProjectAutoClosePolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid project auto close policy: %w", err)
	}

	projectRepo, err := c.ProjectRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for ledger use case: %w", err)
	}

	userUseCase, err := c.UserUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for ledger use case: %w", err)
	}

	baseUseCase := projectUsecase.NewLedgerUseCase(projectRepo, userUseCase, policy, c.Logger(), nil)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for ledger use case: %w", err)
		}
		return projectUsecase.NewLedgerUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initQueryUseCase creates the query use case with all its dependencies.
func (c *Container) initQueryUseCase(ctx context.Context) (projectUsecase.QueryUseCase, error) {
	projectRepo, err := c.ProjectRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for query use case: %w", err)
	}

	baseUseCase := projectUsecase.NewQueryUseCase(projectRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for query use case: %w", err)
		}
		return projectUsecase.NewQueryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
