package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
	projectUseCase "github.com/allisson/crowdfund/internal/project/usecase"
	userUseCase "github.com/allisson/crowdfund/internal/user/usecase"
)

// Credentials identifies the caller of a mutating project command.
type Credentials struct {
	Email    string
	Password string
}

// SearchOptions selects which query runs in RunSearchProjects. Exactly one field must be set.
type SearchOptions struct {
	Title     string
	StartDate string
	Owner     string
	// Status is "open" or "closed".
	Status string
}

// RunCreateProject creates a project owned by the authenticated caller.
func RunCreateProject(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	logger *slog.Logger,
	io IOTuple,
	creds Credentials,
	input projectDomain.CreateProjectInput,
	format string,
) error {
	user, err := authenticate(ctx, users, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	project, err := ledger.Create(ctx, user.Email, input)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if format != "json" {
		_, _ = fmt.Fprintln(io.Writer, "Project created successfully!")
	}
	outputProject(ctx, users, project, format, io.Writer)

	logger.Info("project created", slog.String("project_id", project.ID.String()))
	return nil
}

// RunListProjects prints projects matching filter in stored order.
func RunListProjects(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	io IOTuple,
	filter projectDomain.ListFilter,
	format string,
) error {
	projects, err := ledger.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	outputProjects(ctx, users, projects, format, io.Writer)
	return nil
}

// RunEditProject applies the set fields of input to a project owned by the caller.
func RunEditProject(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	logger *slog.Logger,
	io IOTuple,
	creds Credentials,
	projectID string,
	input projectDomain.EditProjectInput,
	format string,
) error {
	id, err := parseProjectID(projectID)
	if err != nil {
		return err
	}

	user, err := authenticate(ctx, users, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	project, err := ledger.Edit(ctx, user.Email, id, input)
	if err != nil {
		return fmt.Errorf("failed to edit project: %w", err)
	}

	if format != "json" {
		_, _ = fmt.Fprintln(io.Writer, "Project updated successfully!")
	}
	outputProject(ctx, users, project, format, io.Writer)

	logger.Info("project edited",
		slog.String("project_id", id.String()),
		slog.Uint64("revision", project.Revision),
	)
	return nil
}

// RunDeleteProject removes a project owned by the caller.
func RunDeleteProject(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	logger *slog.Logger,
	io IOTuple,
	creds Credentials,
	projectID string,
	format string,
) error {
	id, err := parseProjectID(projectID)
	if err != nil {
		return err
	}

	user, err := authenticate(ctx, users, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	if err := ledger.Delete(ctx, user.Email, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if format == "json" {
		writeJSON(io.Writer, map[string]any{"id": id.String(), "deleted": true})
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Project %s deleted successfully\n", id)
	}

	logger.Info("project deleted", slog.String("project_id", id.String()))
	return nil
}

// RunCloseProject closes a project owned by the caller so it stops taking donations.
func RunCloseProject(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	logger *slog.Logger,
	io IOTuple,
	creds Credentials,
	projectID string,
	format string,
) error {
	id, err := parseProjectID(projectID)
	if err != nil {
		return err
	}

	user, err := authenticate(ctx, users, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	project, err := ledger.Close(ctx, user.Email, id)
	if err != nil {
		return fmt.Errorf("failed to close project: %w", err)
	}

	if format != "json" {
		_, _ = fmt.Fprintln(io.Writer, "Project closed successfully!")
	}
	outputProject(ctx, users, project, format, io.Writer)

	logger.Info("project closed", slog.String("project_id", id.String()))
	return nil
}

// RunDonate credits amount to an open project on behalf of the caller.
func RunDonate(
	ctx context.Context,
	users userUseCase.UseCase,
	ledger projectUseCase.LedgerUseCase,
	logger *slog.Logger,
	io IOTuple,
	creds Credentials,
	projectID string,
	amount float64,
	format string,
) error {
	id, err := parseProjectID(projectID)
	if err != nil {
		return err
	}

	user, err := authenticate(ctx, users, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	project, err := ledger.Donate(ctx, user.Email, id, amount)
	if err != nil {
		return fmt.Errorf("failed to donate: %w", err)
	}

	if format != "json" {
		_, _ = fmt.Fprintf(io.Writer, "Thank you for donating %.2f!\n", amount)
	}
	outputProject(ctx, users, project, format, io.Writer)

	logger.Info("donation recorded",
		slog.String("project_id", id.String()),
		slog.Float64("amount", amount),
	)
	return nil
}

// RunSearchProjects runs the query selected by opts and prints the matches.
func RunSearchProjects(
	ctx context.Context,
	users userUseCase.UseCase,
	query projectUseCase.QueryUseCase,
	io IOTuple,
	opts SearchOptions,
	format string,
) error {
	set := 0
	for _, v := range []string{opts.Title, opts.StartDate, opts.Owner, opts.Status} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of title, start-date, owner or status is required")
	}

	var (
		projects []*projectDomain.Project
		err      error
	)
	switch {
	case opts.Title != "":
		projects, err = query.SearchByTitle(ctx, opts.Title)
	case opts.StartDate != "":
		projects, err = query.SearchByStartDate(ctx, opts.StartDate)
	case opts.Owner != "":
		projects, err = query.ListByOwner(ctx, opts.Owner)
	default:
		switch strings.ToLower(strings.TrimSpace(opts.Status)) {
		case "open":
			projects, err = query.ListByStatus(ctx, false)
		case "closed":
			projects, err = query.ListByStatus(ctx, true)
		default:
			return fmt.Errorf("invalid status: %s (valid options: open, closed)", opts.Status)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to search projects: %w", err)
	}

	outputProjects(ctx, users, projects, format, io.Writer)
	return nil
}
