package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/crowdfund/internal/records"
	userDomain "github.com/allisson/crowdfund/internal/user/domain"
	userUseCase "github.com/allisson/crowdfund/internal/user/usecase"
)

// RunRegister registers a new user and prints the stored profile with the password masked.
func RunRegister(
	ctx context.Context,
	users userUseCase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	input userDomain.RegisterUserInput,
	format string,
) error {
	logger.Info("registering user", slog.String("email", input.Email))

	user, err := users.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, records.NewUserRecord(user, records.ProfileDisplay))
	} else {
		_, _ = fmt.Fprintln(io.Writer, "User registered successfully!")
		outputUserText(user, io.Writer)
	}

	return nil
}

// RunLogin checks credentials and prints the authenticated profile.
func RunLogin(
	ctx context.Context,
	users userUseCase.UseCase,
	logger *slog.Logger,
	io IOTuple,
	email, password string,
	format string,
) error {
	user, err := authenticate(ctx, users, email, password)
	if err != nil {
		return err
	}

	if format == "json" {
		writeJSON(io.Writer, records.NewUserRecord(user, records.ProfileDisplay))
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Welcome, %s!\n", user.FullName())
		outputUserText(user, io.Writer)
	}

	logger.Info("user authenticated", slog.String("email", user.Email))
	return nil
}

func outputUserText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintf(writer, "Name: %s\n", user.FullName())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(writer, "Mobile phone: %s\n", user.MobilePhone)
}
