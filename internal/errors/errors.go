package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/daybook/internal/logger"
)

// Sentinel error classes. Callers wrap these with context via fmt.Errorf
// and %w, and branch on them with errors.Is.
var (
	// ErrValidation covers empty, short or mismatched input. Recovered
	// locally by re-prompting the user.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicate is a unique-constraint violation, e.g. a taken username.
	ErrDuplicate = errors.New("already exists")
	// ErrNotFound is a missing record or an unknown city.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is the generic login failure. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized means the weather API rejected the configured key,
	// or no key is configured at all.
	ErrUnauthorized = errors.New("api key missing or invalid")
	// ErrNetwork is a transport failure: timeout, DNS, refused connection.
	ErrNetwork = errors.New("network error")
	// ErrUpstream is a non-2xx response other than 401/404.
	ErrUpstream = errors.New("upstream service error")
)

// Is is a convenience re-export so callers don't need both error packages.
func Is(err, target error) bool { return errors.Is(err, target) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
