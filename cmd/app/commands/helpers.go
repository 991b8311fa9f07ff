// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"

	"github.com/allisson/crowdfund/internal/app"
	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
	"github.com/allisson/crowdfund/internal/records"
	userDomain "github.com/allisson/crowdfund/internal/user/domain"
	userUseCase "github.com/allisson/crowdfund/internal/user/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer shuts down the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// authenticate checks the caller credentials before a mutating command runs.
func authenticate(
	ctx context.Context,
	users userUseCase.UseCase,
	email, password string,
) (*userDomain.User, error) {
	user, err := users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	return user, nil
}

// parseProjectID parses the project handle given on the command line.
func parseProjectID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid project ID format: %w", err)
	}
	return id, nil
}

// writeJSON writes v indented, followed by a newline.
func writeJSON(writer io.Writer, v any) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}

// projectViews resolves each creator for display. Creators that cannot be found are
// rendered with only their email.
func projectViews(
	ctx context.Context,
	users userUseCase.UseCase,
	projects []*projectDomain.Project,
) []records.ProjectView {
	creators := make(map[string]*userDomain.User)
	views := make([]records.ProjectView, 0, len(projects))
	for _, project := range projects {
		key := strings.ToLower(project.Creator)
		creator, ok := creators[key]
		if !ok {
			creator, _ = users.GetByEmail(ctx, project.Creator)
			creators[key] = creator
		}
		views = append(views, records.NewProjectView(project, creator))
	}
	return views
}

// outputProjects prints projects in the requested format.
func outputProjects(
	ctx context.Context,
	users userUseCase.UseCase,
	projects []*projectDomain.Project,
	format string,
	writer io.Writer,
) {
	views := projectViews(ctx, users, projects)
	if format == "json" {
		writeJSON(writer, views)
		return
	}

	if len(views) == 0 {
		_, _ = fmt.Fprintln(writer, "No projects found")
		return
	}
	for i, view := range views {
		if i > 0 {
			_, _ = fmt.Fprintln(writer)
		}
		writeProjectText(view, writer)
	}
}

// outputProject prints a single project in the requested format.
func outputProject(
	ctx context.Context,
	users userUseCase.UseCase,
	project *projectDomain.Project,
	format string,
	writer io.Writer,
) {
	view := projectViews(ctx, users, []*projectDomain.Project{project})[0]
	if format == "json" {
		writeJSON(writer, view)
		return
	}
	writeProjectText(view, writer)
}

func writeProjectText(view records.ProjectView, writer io.Writer) {
	status := "open"
	if view.Closed {
		status = "closed"
	}

	_, _ = fmt.Fprintf(writer, "Project: %s\n", view.Title)
	_, _ = fmt.Fprintf(writer, "ID: %s\n", view.ID)
	_, _ = fmt.Fprintf(writer, "Details: %s\n", view.Details)
	_, _ = fmt.Fprintf(writer, "Creator: %s\n", creatorName(view.Creator))
	_, _ = fmt.Fprintf(writer, "Target: %.2f\n", view.TargetAmount)
	_, _ = fmt.Fprintf(writer, "Raised: %.2f\n", view.CurrentAmount)
	_, _ = fmt.Fprintf(writer, "Start date: %s\n", view.StartDate)
	_, _ = fmt.Fprintf(writer, "End date: %s\n", view.EndDate)
	_, _ = fmt.Fprintf(writer, "Backers: %d\n", len(view.Backers))
	_, _ = fmt.Fprintf(writer, "Status: %s\n", status)
	_, _ = fmt.Fprintf(writer, "Revision: %d\n", view.Revision)
}

func creatorName(creator records.UserRecord) string {
	name := strings.TrimSpace(creator.FirstName + " " + creator.LastName)
	if name == "" {
		return creator.Email
	}
	return fmt.Sprintf("%s <%s>", name, creator.Email)
}
