package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/crowdfund/internal/project/domain"
	appValidation "github.com/allisson/crowdfund/internal/validation"
)

// ledgerUseCase implements LedgerUseCase.
type ledgerUseCase struct {
	projectRepo ProjectRepository
	users       UserLookup
	autoClose   domain.AutoClosePolicy
	logger      *slog.Logger
	now         func() time.Time
}

// NewLedgerUseCase creates the project ledger. A nil now uses time.Now.
func NewLedgerUseCase(
	projectRepo ProjectRepository,
	users UserLookup,
	autoClose domain.AutoClosePolicy,
	logger *slog.Logger,
	now func() time.Time,
) LedgerUseCase {
	if now == nil {
		now = time.Now
	}
	return &ledgerUseCase{
		projectRepo: projectRepo,
		users:       users,
		autoClose:   autoClose,
		logger:      logger,
		now:         now,
	}
}

func (l *ledgerUseCase) today() time.Time {
	return domain.Truncate(l.now())
}

func validateCreateProjectInput(input domain.CreateProjectInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.EndDate,
			validation.Required.Error("end date is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateEditProjectInput(input domain.EditProjectInput) error {
	if input.Title == nil {
		return nil
	}
	err := validation.Validate(*input.Title,
		validation.Required.Error("title must not be blank"),
		appValidation.NotBlank,
	)
	return appValidation.WrapValidationError(err)
}

// indexOf returns the position of the project with id, or -1.
func indexOf(projects []*domain.Project, id uuid.UUID) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// find loads the set and locates id, checking ownership when owner is not empty.
func (l *ledgerUseCase) find(
	ctx context.Context,
	id uuid.UUID,
	owner string,
) ([]*domain.Project, int, error) {
	projects := l.projectRepo.LoadAll(ctx)
	i := indexOf(projects, id)
	if i < 0 {
		return nil, -1, domain.ErrProjectNotFound
	}
	if owner != "" && !projects[i].IsOwnedBy(owner) {
		return nil, -1, domain.ErrNotOwner
	}
	return projects, i, nil
}

// Create registers a new open project owned by owner, starting today.
func (l *ledgerUseCase) Create(
	ctx context.Context,
	owner string,
	input domain.CreateProjectInput,
) (*domain.Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateCreateProjectInput(input); err != nil {
		return nil, err
	}

	if !l.users.IsRegistered(ctx, owner) {
		return nil, domain.ErrCreatorNotRegistered
	}

	if !domain.IsValidTarget(input.TargetAmount) {
		return nil, domain.ErrInvalidTargetAmount
	}

	start := l.today()
	end, err := domain.ParseEndDate(input.EndDate, start)
	if err != nil {
		return nil, err
	}

	project := domain.NewProject(
		input.Title,
		input.Details,
		input.TargetAmount,
		start,
		end,
		strings.TrimSpace(owner),
	)

	projects := l.projectRepo.LoadAll(ctx)
	if err := l.projectRepo.SaveAll(ctx, append(projects, project)); err != nil {
		return nil, err
	}

	l.logger.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("creator", project.Creator),
	)

	return project, nil
}

// List returns the projects that pass filter.
func (l *ledgerUseCase) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Project, error) {
	result := []*domain.Project{}
	for _, p := range l.projectRepo.LoadAll(ctx) {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// ListOpen returns open projects, optionally only those owned by owner.
func (l *ledgerUseCase) ListOpen(ctx context.Context, owner string) ([]*domain.Project, error) {
	return l.List(ctx, domain.ListFilter{Owner: owner, OpenOnly: true})
}

// Get retrieves a single project.
func (l *ledgerUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	projects, i, err := l.find(ctx, id, "")
	if err != nil {
		return nil, err
	}
	return projects[i], nil
}

// Edit replaces the supplied fields of an open project owned by owner.
func (l *ledgerUseCase) Edit(
	ctx context.Context,
	owner string,
	id uuid.UUID,
	input domain.EditProjectInput,
) (*domain.Project, error) {
	projects, i, err := l.find(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	project := projects[i]
	if project.Closed {
		return nil, domain.ErrProjectClosed
	}
	if input.ExpectedRevision != nil && *input.ExpectedRevision != project.Revision {
		return nil, domain.ErrStaleRevision
	}
	if input.IsEmpty() {
		return project, nil
	}

	if err := validateEditProjectInput(input); err != nil {
		return nil, err
	}
	if input.TargetAmount != nil && !domain.IsValidTarget(*input.TargetAmount) {
		return nil, domain.ErrInvalidTargetAmount
	}

	var end time.Time
	if input.EndDate != nil {
		end, err = domain.ParseEndDate(*input.EndDate, l.today())
		if err != nil {
			return nil, err
		}
	}

	updated := project.Clone()
	if input.Title != nil {
		updated.Title = strings.TrimSpace(*input.Title)
	}
	if input.Details != nil {
		updated.Details = *input.Details
	}
	if input.TargetAmount != nil {
		updated.TargetAmount = *input.TargetAmount
	}
	if input.EndDate != nil {
		updated.EndDate = end
	}
	updated.Revision++

	projects[i] = updated
	if err := l.projectRepo.SaveAll(ctx, projects); err != nil {
		return nil, err
	}

	l.logger.Info("project updated",
		slog.String("project_id", updated.ID.String()),
		slog.Uint64("revision", updated.Revision),
	)

	return updated, nil
}

// Delete removes a project owned by owner.
func (l *ledgerUseCase) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	projects, i, err := l.find(ctx, id, owner)
	if err != nil {
		return err
	}

	remaining := make([]*domain.Project, 0, len(projects)-1)
	remaining = append(remaining, projects[:i]...)
	remaining = append(remaining, projects[i+1:]...)

	if err := l.projectRepo.SaveAll(ctx, remaining); err != nil {
		return err
	}

	l.logger.Info("project deleted", slog.String("project_id", id.String()))

	return nil
}

// Donate credits amount to an open project and records donor as a backer.
func (l *ledgerUseCase) Donate(
	ctx context.Context,
	donor string,
	id uuid.UUID,
	amount float64,
) (*domain.Project, error) {
	if !domain.IsValidDonation(amount) {
		return nil, domain.ErrInvalidAmount
	}

	projects, i, err := l.find(ctx, id, "")
	if err != nil {
		return nil, err
	}
	if projects[i].Closed {
		return nil, domain.ErrProjectClosed
	}

	updated := projects[i].Clone()
	updated.AddDonation(strings.TrimSpace(donor), amount)
	// An auto-close is part of the same mutation as the donation, so the
	// revision advances once.
	if l.autoClose == domain.AutoCloseTargetReached && updated.TargetReached() {
		updated.Closed = true
	}

	projects[i] = updated
	if err := l.projectRepo.SaveAll(ctx, projects); err != nil {
		return nil, err
	}

	l.logger.Info("donation recorded",
		slog.String("project_id", updated.ID.String()),
		slog.String("donor", donor),
		slog.Float64("amount", amount),
		slog.Bool("closed", updated.Closed),
	)

	return updated, nil
}

// Close stops an open project owned by owner from accepting edits and donations.
func (l *ledgerUseCase) Close(ctx context.Context, owner string, id uuid.UUID) (*domain.Project, error) {
	projects, i, err := l.find(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if projects[i].Closed {
		return nil, domain.ErrProjectClosed
	}

	updated := projects[i].Clone()
	updated.Close()

	projects[i] = updated
	if err := l.projectRepo.SaveAll(ctx, projects); err != nil {
		return nil, err
	}

	l.logger.Info("project closed", slog.String("project_id", updated.ID.String()))

	return updated, nil
}
