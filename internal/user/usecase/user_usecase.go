package usecase

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/crowdfund/internal/user/domain"
	appValidation "github.com/allisson/crowdfund/internal/validation"
)

// userUseCase implements UseCase on top of a full-set UserRepository.
type userUseCase struct {
	userRepo UserRepository
	logger   *slog.Logger
}

// NewUserUseCase creates a new user directory use case.
func NewUserUseCase(userRepo UserRepository, logger *slog.Logger) UseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// validateRegisterUserInput checks required fields and the email format. The phone
// number is checked separately so it can be reported as domain.ErrInvalidPhoneNumber.
func (uc *userUseCase) validateRegisterUserInput(input domain.RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(1, 255).Error("email must be at most 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func findByEmail(users []*domain.User, email string) *domain.User {
	for _, user := range users {
		if user.HasEmail(email) {
			return user
		}
	}
	return nil
}

// IsRegistered reports whether email belongs to a registered user.
func (uc *userUseCase) IsRegistered(ctx context.Context, email string) bool {
	return findByEmail(uc.userRepo.LoadAll(ctx), email) != nil
}

// Register appends a new user and persists the full user set.
func (uc *userUseCase) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.MobilePhone = strings.TrimSpace(input.MobilePhone)

	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	users := uc.userRepo.LoadAll(ctx)
	if findByEmail(users, input.Email) != nil {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	if !appValidation.IsMobilePhone(input.MobilePhone) {
		return nil, domain.ErrInvalidPhoneNumber
	}

	user := &domain.User{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    input.Password,
		MobilePhone: input.MobilePhone,
	}

	if err := uc.userRepo.SaveAll(ctx, append(users, user)); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", slog.String("email", user.Email))

	return user, nil
}

// Authenticate resolves credentials to a registered user.
func (uc *userUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user := findByEmail(uc.userRepo.LoadAll(ctx), email)
	if user == nil || user.Password != password {
		uc.logger.Debug("authentication rejected", slog.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (uc *userUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := findByEmail(uc.userRepo.LoadAll(ctx), email)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
