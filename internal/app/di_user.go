package app

import (
	"context"
	"fmt"

	userRepository "github.com/allisson/crowdfund/internal/user/repository"
	userUsecase "github.com/allisson/crowdfund/internal/user/usecase"
)

// UserRepository returns the user repository instance.
func (c *Container) UserRepository(ctx context.Context) (userUsecase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository(ctx)
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// UserUseCase returns the user directory use case.
func (c *Container) UserUseCase(ctx context.Context) (userUsecase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase(ctx)
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// initUserRepository creates the user repository over the record store.
func (c *Container) initUserRepository(ctx context.Context) (userUsecase.UserRepository, error) {
	store, err := c.RecordStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get record store for user repository: %w", err)
	}
	return userRepository.NewRecordUserRepository(store), nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase(ctx context.Context) (userUsecase.UseCase, error) {
	userRepo, err := c.UserRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	baseUseCase := userUsecase.NewUserUseCase(userRepo, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUsecase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
