package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
)

// RegistrationInput carries the raw registration form fields.
type RegistrationInput struct {
	Name            string
	Surname         string
	Username        string
	Password        string
	ConfirmPassword string
}

// ValidateRegistration checks the registration form. All fields are
// required, the password must meet the minimum length and the confirmation
// must match. Every failure wraps errors.ErrValidation.
func ValidateRegistration(in RegistrationInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Surname) == "" ||
		strings.TrimSpace(in.Username) == "" ||
		in.Password == "" || in.ConfirmPassword == "" {
		return fmt.Errorf("%w: all fields are required", errors.ErrValidation)
	}
	if len(in.Password) < constants.MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", errors.ErrValidation, constants.MinPasswordLen)
	}
	if in.Password != in.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", errors.ErrValidation)
	}
	return nil
}

// ValidateEntryContent rejects empty diary content. Title and mood are
// optional.
func ValidateEntryContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: entry content must not be empty", errors.ErrValidation)
	}
	return nil
}

// ValidateHealthFigures checks that all health quantities are non-negative.
func ValidateHealthFigures(waterML int, exerciseKM, sleepHours float64) error {
	if waterML < 0 {
		return fmt.Errorf("%w: water must not be negative", errors.ErrValidation)
	}
	if exerciseKM < 0 {
		return fmt.Errorf("%w: exercise distance must not be negative", errors.ErrValidation)
	}
	if sleepHours < 0 {
		return fmt.Errorf("%w: sleep duration must not be negative", errors.ErrValidation)
	}
	return nil
}

// ValidateDate checks a calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", errors.ErrValidation, date)
	}
	return nil
}
