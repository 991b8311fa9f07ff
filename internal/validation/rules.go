// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/crowdfund/internal/errors"
)

var (
	// emailRegex requires a local part and a domain; the domain needs no dot so
	// addresses like alice@localhost are accepted.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

	// mobilePhoneRegex accepts Egyptian mobile numbers in international form.
	mobilePhoneRegex = regexp.MustCompile(`^\+20(10|11|12|15)\d{8}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// IsMobilePhone reports whether s is a +20 number on the 10, 11, 12 or 15 networks.
func IsMobilePhone(s string) bool {
	return mobilePhoneRegex.MatchString(s)
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
