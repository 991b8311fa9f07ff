package usecase

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/crowdfund/internal/errors"
	"github.com/allisson/crowdfund/internal/project/domain"
	"github.com/allisson/crowdfund/internal/project/repository"
	projectMocks "github.com/allisson/crowdfund/internal/project/usecase/mocks"
	"github.com/allisson/crowdfund/internal/records"
)

func createBikes(t *testing.T, ledger LedgerUseCase) *domain.Project {
	t.Helper()
	project, err := ledger.Create(context.Background(), alice, domain.CreateProjectInput{
		Title:        "Bikes",
		Details:      "City bikes",
		TargetAmount: 1000,
		EndDate:      "2026-12-31",
	})
	require.NoError(t, err)
	return project
}

func TestNewLedgerUseCase_DefaultClock(t *testing.T) {
	ledger := NewLedgerUseCase(&memoryProjectRepository{}, staticUsers{}, domain.AutoCloseNever, testLogger(), nil)

	impl, ok := ledger.(*ledgerUseCase)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), impl.now(), time.Minute)
}

func TestLedgerUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)

		project := createBikes(t, ledger)

		assert.NotEqual(t, uuid.Nil, project.ID)
		assert.Equal(t, "Bikes", project.Title)
		assert.Equal(t, alice, project.Creator)
		assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), project.StartDate)
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), project.EndDate)
		assert.Zero(t, project.CurrentAmount)
		assert.Empty(t, project.Backers)
		assert.NotNil(t, project.Backers)
		assert.False(t, project.Closed)
		assert.Equal(t, 1, repo.saves)
		require.Len(t, repo.stored, 1)
		assert.Equal(t, project.ID, repo.stored[0].ID)
	})

	t.Run("Success_EndDateToday", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)

		project, err := ledger.Create(ctx, alice, domain.CreateProjectInput{
			Title:   "Same day",
			EndDate: "2026-10-19",
		})

		require.NoError(t, err)
		assert.Equal(t, project.StartDate, project.EndDate)
	})

	t.Run("Success_AppendsInOrder", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)

		first := createBikes(t, ledger)
		second, err := ledger.Create(ctx, bob, domain.CreateProjectInput{Title: "Books", EndDate: "2027-01-01"})
		require.NoError(t, err)

		require.Len(t, repo.stored, 2)
		assert.Equal(t, first.ID, repo.stored[0].ID)
		assert.Equal(t, second.ID, repo.stored[1].ID)
	})

	t.Run("Success_BackersNotShared", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)

		first := createBikes(t, ledger)
		second := createBikes(t, ledger)

		_, err := ledger.Donate(ctx, bob, first.ID, 10)
		require.NoError(t, err)

		got, err := ledger.Get(ctx, second.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Backers)
	})

	errorCases := []struct {
		name        string
		owner       string
		input       domain.CreateProjectInput
		expectedErr error
	}{
		{
			name:        "unregistered creator",
			owner:       "mallory@example.com",
			input:       domain.CreateProjectInput{Title: "X", EndDate: "2026-12-31"},
			expectedErr: domain.ErrCreatorNotRegistered,
		},
		{
			name:        "end date before start",
			owner:       alice,
			input:       domain.CreateProjectInput{Title: "X", EndDate: "2026-10-18"},
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:        "malformed end date",
			owner:       alice,
			input:       domain.CreateProjectInput{Title: "X", EndDate: "31/12/2026"},
			expectedErr: domain.ErrInvalidDate,
		},
		{
			name:        "negative target",
			owner:       alice,
			input:       domain.CreateProjectInput{Title: "X", TargetAmount: -1, EndDate: "2026-12-31"},
			expectedErr: domain.ErrInvalidTargetAmount,
		},
		{
			name:        "blank title",
			owner:       alice,
			input:       domain.CreateProjectInput{Title: "   ", EndDate: "2026-12-31"},
			expectedErr: apperrors.ErrInvalidInput,
		},
		{
			name:        "missing end date",
			owner:       alice,
			input:       domain.CreateProjectInput{Title: "X"},
			expectedErr: apperrors.ErrInvalidInput,
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryProjectRepository{}
			ledger := newTestLedger(repo, domain.AutoCloseNever)

			project, err := ledger.Create(ctx, tc.owner, tc.input)

			assert.Nil(t, project)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Zero(t, repo.saves)
		})
	}

	t.Run("Error_SaveFailure", func(t *testing.T) {
		repo := &projectMocks.MockProjectRepository{}
		users := &projectMocks.MockUserLookup{}
		saveErr := apperrors.Wrap(apperrors.ErrPersistence, "read-only filesystem")

		users.On("IsRegistered", ctx, alice).Return(true).Once()
		repo.On("LoadAll", ctx).Return([]*domain.Project{}).Once()
		repo.On("SaveAll", ctx, mock.AnythingOfType("[]*domain.Project")).Return(saveErr).Once()

		ledger := NewLedgerUseCase(repo, users, domain.AutoCloseNever, testLogger(), fixedNow)
		project, err := ledger.Create(ctx, alice, domain.CreateProjectInput{Title: "X", EndDate: "2026-12-31"})

		assert.Nil(t, project)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
		repo.AssertExpectations(t)
		users.AssertExpectations(t)
	})
}

func TestLedgerUseCase_ListAndListOpen(t *testing.T) {
	ctx := context.Background()
	repo := &memoryProjectRepository{}
	ledger := newTestLedger(repo, domain.AutoCloseNever)

	bikes := createBikes(t, ledger)
	books, err := ledger.Create(ctx, bob, domain.CreateProjectInput{Title: "Books", EndDate: "2027-01-01"})
	require.NoError(t, err)
	_, err = ledger.Close(ctx, alice, bikes.ID)
	require.NoError(t, err)

	all, err := ledger.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, bikes.ID, all[0].ID)
	assert.True(t, all[0].Closed)

	mine, err := ledger.List(ctx, domain.ListFilter{Owner: "ALICE@example.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bikes.ID, mine[0].ID)

	open, err := ledger.ListOpen(ctx, "")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, books.ID, open[0].ID)

	openMine, err := ledger.ListOpen(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, openMine)
	assert.NotNil(t, openMine)
}

func TestLedgerUseCase_Get(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)
	bikes := createBikes(t, ledger)

	got, err := ledger.Get(ctx, bikes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bikes", got.Title)

	_, err = ledger.Get(ctx, uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerUseCase_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeepsOmittedFields", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		edited, err := ledger.Edit(ctx, alice, bikes.ID, domain.EditProjectInput{TargetAmount: ptr(1500.0)})

		require.NoError(t, err)
		assert.Equal(t, 1500.0, edited.TargetAmount)
		assert.Equal(t, bikes.Title, edited.Title)
		assert.Equal(t, bikes.Details, edited.Details)
		assert.Equal(t, bikes.EndDate, edited.EndDate)
		assert.Equal(t, bikes.StartDate, edited.StartDate)
		assert.Equal(t, bikes.Revision+1, edited.Revision)
		assert.Equal(t, 1500.0, repo.stored[0].TargetAmount)
	})

	t.Run("Success_AllFields", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		edited, err := ledger.Edit(ctx, alice, bikes.ID, domain.EditProjectInput{
			Title:            ptr(" E-Bikes "),
			Details:          ptr(""),
			TargetAmount:     ptr(0.0),
			EndDate:          ptr("2026-10-19"),
			ExpectedRevision: ptr(bikes.Revision),
		})

		require.NoError(t, err)
		assert.Equal(t, "E-Bikes", edited.Title)
		assert.Empty(t, edited.Details)
		assert.Zero(t, edited.TargetAmount)
		assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), edited.EndDate)
	})

	t.Run("Success_NoFieldsIsNoop", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		edited, err := ledger.Edit(ctx, alice, bikes.ID, domain.EditProjectInput{})

		require.NoError(t, err)
		assert.Equal(t, bikes.Revision, edited.Revision)
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		_, err := ledger.Edit(ctx, bob, bikes.ID, domain.EditProjectInput{Title: ptr("Mine now")})

		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Equal(t, "Bikes", repo.stored[0].Title)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)

		_, err := ledger.Edit(ctx, alice, uuid.Must(uuid.NewV7()), domain.EditProjectInput{Title: ptr("X")})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Error_ClosedRejectsEveryFieldCombination", func(t *testing.T) {
		inputs := map[string]domain.EditProjectInput{
			"none":          {},
			"title":         {Title: ptr("X")},
			"details":       {Details: ptr("X")},
			"target":        {TargetAmount: ptr(5.0)},
			"end date":      {EndDate: ptr("2027-01-01")},
			"invalid date":  {EndDate: ptr("not-a-date")},
			"every field":   {Title: ptr("X"), Details: ptr("Y"), TargetAmount: ptr(1.0), EndDate: ptr("2027-01-01")},
			"with revision": {Title: ptr("X"), ExpectedRevision: ptr(uint64(99))},
		}

		for name, input := range inputs {
			t.Run(name, func(t *testing.T) {
				repo := &memoryProjectRepository{}
				ledger := newTestLedger(repo, domain.AutoCloseNever)
				bikes := createBikes(t, ledger)
				_, err := ledger.Close(ctx, alice, bikes.ID)
				require.NoError(t, err)
				saves := repo.saves

				_, err = ledger.Edit(ctx, alice, bikes.ID, input)

				assert.ErrorIs(t, err, domain.ErrProjectClosed)
				assert.ErrorIs(t, err, apperrors.ErrFailedPrecondition)
				assert.Equal(t, saves, repo.saves)
			})
		}
	})

	t.Run("Error_StaleRevision", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		_, err := ledger.Donate(ctx, bob, bikes.ID, 10)
		require.NoError(t, err)

		_, err = ledger.Edit(ctx, alice, bikes.ID, domain.EditProjectInput{
			Title:            ptr("Old view"),
			ExpectedRevision: ptr(bikes.Revision),
		})

		assert.ErrorIs(t, err, domain.ErrStaleRevision)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, "Bikes", repo.stored[0].Title)
	})

	t.Run("Error_InvalidValues", func(t *testing.T) {
		cases := []struct {
			name        string
			input       domain.EditProjectInput
			expectedErr error
		}{
			{name: "end date in past", input: domain.EditProjectInput{EndDate: ptr("2026-10-18")}, expectedErr: domain.ErrEndDateInPast},
			{name: "malformed end date", input: domain.EditProjectInput{EndDate: ptr("2026-13-01")}, expectedErr: domain.ErrInvalidDate},
			{name: "negative target", input: domain.EditProjectInput{TargetAmount: ptr(-5.0)}, expectedErr: domain.ErrInvalidTargetAmount},
			{name: "NaN target", input: domain.EditProjectInput{TargetAmount: ptr(math.NaN())}, expectedErr: domain.ErrInvalidTargetAmount},
			{name: "blank title", input: domain.EditProjectInput{Title: ptr("  ")}, expectedErr: apperrors.ErrInvalidInput},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := &memoryProjectRepository{}
				ledger := newTestLedger(repo, domain.AutoCloseNever)
				bikes := createBikes(t, ledger)

				_, err := ledger.Edit(ctx, alice, bikes.ID, tc.input)

				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, 1, repo.saves)
				assert.Equal(t, bikes.Revision, repo.stored[0].Revision)
			})
		}
	})
}

func TestLedgerUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RemovesOnlyTarget", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)
		books, err := ledger.Create(ctx, alice, domain.CreateProjectInput{Title: "Books", EndDate: "2027-01-01"})
		require.NoError(t, err)

		require.NoError(t, ledger.Delete(ctx, alice, bikes.ID))

		_, err = ledger.Get(ctx, bikes.ID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		require.Len(t, repo.stored, 1)
		assert.Equal(t, books.ID, repo.stored[0].ID)
	})

	t.Run("Success_ClosedProject", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)
		_, err := ledger.Close(ctx, alice, bikes.ID)
		require.NoError(t, err)

		require.NoError(t, ledger.Delete(ctx, alice, bikes.ID))
		assert.Empty(t, repo.stored)
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		err := ledger.Delete(ctx, bob, bikes.ID)

		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.Len(t, repo.stored, 1)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)

		err := ledger.Delete(ctx, alice, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestLedgerUseCase_Donate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Cumulative", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		amounts := []struct {
			donor  string
			amount float64
		}{
			{bob, 100}, {carol, 50.5}, {bob, 0.25},
		}
		for _, d := range amounts {
			_, err := ledger.Donate(ctx, d.donor, bikes.ID, d.amount)
			require.NoError(t, err)
		}

		got, err := ledger.Get(ctx, bikes.ID)
		require.NoError(t, err)
		assert.InDelta(t, 150.75, got.CurrentAmount, 1e-9)
		assert.Equal(t, []string{bob, carol, bob}, got.Backers)
		assert.Equal(t, bikes.Revision+3, got.Revision)
	})

	t.Run("Success_OvershootKeepsOpenByDefault", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		got, err := ledger.Donate(ctx, bob, bikes.ID, 5000)

		require.NoError(t, err)
		assert.Equal(t, 5000.0, got.CurrentAmount)
		assert.False(t, got.Closed)
	})

	t.Run("Success_AutoCloseWhenTargetReached", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseTargetReached)
		bikes := createBikes(t, ledger)

		got, err := ledger.Donate(ctx, bob, bikes.ID, 999)
		require.NoError(t, err)
		assert.False(t, got.Closed)

		got, err = ledger.Donate(ctx, carol, bikes.ID, 1)
		require.NoError(t, err)
		assert.True(t, got.Closed)

		_, err = ledger.Donate(ctx, bob, bikes.ID, 1)
		assert.ErrorIs(t, err, domain.ErrProjectClosed)
	})

	t.Run("Success_AutoCloseAdvancesRevisionOnce", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseTargetReached)
		bikes := createBikes(t, ledger)

		got, err := ledger.Donate(ctx, bob, bikes.ID, bikes.TargetAmount)
		require.NoError(t, err)
		assert.True(t, got.Closed)
		assert.Equal(t, bikes.Revision+1, got.Revision)
		assert.Equal(t, bikes.Revision+1, repo.stored[0].Revision)
	})

	t.Run("Error_InvalidAmountLeavesStateUnchanged", func(t *testing.T) {
		for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			repo := &memoryProjectRepository{}
			ledger := newTestLedger(repo, domain.AutoCloseNever)
			bikes := createBikes(t, ledger)

			_, err := ledger.Donate(ctx, bob, bikes.ID, amount)

			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, 1, repo.saves)
			assert.Zero(t, repo.stored[0].CurrentAmount)
			assert.Empty(t, repo.stored[0].Backers)
		}
	})

	t.Run("Error_Closed", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)
		_, err := ledger.Close(ctx, alice, bikes.ID)
		require.NoError(t, err)

		_, err = ledger.Donate(ctx, bob, bikes.ID, 10)

		assert.ErrorIs(t, err, domain.ErrProjectClosed)
		assert.Zero(t, repo.stored[0].CurrentAmount)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)

		_, err := ledger.Donate(ctx, bob, uuid.Must(uuid.NewV7()), 10)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("Error_SaveFailureLeavesStoredSetUnchanged", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)
		repo.saveErr = apperrors.Wrap(apperrors.ErrPersistence, "disk full")

		_, err := ledger.Donate(ctx, bob, bikes.ID, 10)

		assert.ErrorIs(t, err, apperrors.ErrPersistence)
		assert.Zero(t, repo.stored[0].CurrentAmount)
	})
}

func TestLedgerUseCase_Close(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &memoryProjectRepository{}
		ledger := newTestLedger(repo, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		closed, err := ledger.Close(ctx, alice, bikes.ID)

		require.NoError(t, err)
		assert.True(t, closed.Closed)
		assert.True(t, repo.stored[0].Closed)
	})

	t.Run("Error_AlreadyClosed", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)
		_, err := ledger.Close(ctx, alice, bikes.ID)
		require.NoError(t, err)

		_, err = ledger.Close(ctx, alice, bikes.ID)
		assert.ErrorIs(t, err, domain.ErrProjectClosed)
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		ledger := newTestLedger(&memoryProjectRepository{}, domain.AutoCloseNever)
		bikes := createBikes(t, ledger)

		_, err := ledger.Close(ctx, bob, bikes.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})
}

// TestLedgerUseCase_Scenario walks the reference flow against file-backed records.
func TestLedgerUseCase_Scenario(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewRecordProjectRepository(records.NewStore(records.NewFileBackend(dir), logger))
	ledger := newTestLedger(repo, domain.AutoCloseNever)

	bikes := createBikes(t, ledger)

	donated, err := ledger.Donate(ctx, bob, bikes.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, donated.CurrentAmount)
	assert.Equal(t, []string{bob}, donated.Backers)

	edited, err := ledger.Edit(ctx, alice, bikes.ID, domain.EditProjectInput{TargetAmount: ptr(1500.0)})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, edited.TargetAmount)
	assert.Equal(t, "Bikes", edited.Title)
	assert.Equal(t, 250.0, edited.CurrentAmount)

	_, err = ledger.Edit(ctx, bob, bikes.ID, domain.EditProjectInput{Title: ptr("Hijacked")})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	reloaded := newTestLedger(
		repository.NewRecordProjectRepository(records.NewStore(records.NewFileBackend(dir), logger)),
		domain.AutoCloseNever,
	)
	got, err := reloaded.Get(ctx, bikes.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, got)

	require.NoError(t, ledger.Delete(ctx, alice, bikes.ID))
	all, err := reloaded.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}
