package domain

import (
	"github.com/allisson/crowdfund/internal/errors"
)

// Project-specific error definitions.
var (
	// ErrProjectNotFound indicates no project has the requested ID.
	ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")

	// ErrCreatorNotRegistered indicates the owner is not in the user directory.
	ErrCreatorNotRegistered = errors.Wrap(errors.ErrNotFound, "project creator is not registered")

	// ErrNotOwner indicates the caller does not own the project.
	ErrNotOwner = errors.Wrap(errors.ErrForbidden, "project is owned by another user")

	// ErrProjectClosed indicates the project no longer accepts edits or donations.
	ErrProjectClosed = errors.Wrap(errors.ErrFailedPrecondition, "project is closed")

	// ErrStaleRevision indicates the caller's copy of the project is outdated.
	ErrStaleRevision = errors.Wrap(errors.ErrConflict, "project was modified since it was read")

	// ErrInvalidDate indicates a date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.Wrap(errors.ErrInvalidInput, "invalid date, expected YYYY-MM-DD")

	// ErrEndDateInPast indicates an end date earlier than the allowed minimum.
	ErrEndDateInPast = errors.Wrap(ErrInvalidDate, "end date is in the past")

	// ErrInvalidAmount indicates a donation amount that is not strictly positive.
	ErrInvalidAmount = errors.Wrap(errors.ErrInvalidInput, "donation amount must be positive")

	// ErrInvalidTargetAmount indicates a negative or non-finite funding goal.
	ErrInvalidTargetAmount = errors.Wrap(errors.ErrInvalidInput, "target amount must not be negative")
)
