// Package domain defines the core user domain entities and types.
package domain

import (
	"strings"

	"github.com/allisson/crowdfund/internal/errors"
)

// User represents a registered account. Email is the case-insensitive identity key.
type User struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	MobilePhone string
}

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	MobilePhone string `json:"mobile_phone"`
}

// HasEmail reports whether the user is identified by email, ignoring case.
func (u *User) HasEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyRegistered indicates a user with the same email already exists.
	ErrEmailAlreadyRegistered = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrInvalidPhoneNumber indicates the mobile phone doesn't match the accepted pattern.
	ErrInvalidPhoneNumber = errors.Wrap(errors.ErrInvalidInput, "invalid mobile phone number")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")
)
