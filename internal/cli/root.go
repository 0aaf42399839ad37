package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/auth"
	"github.com/julianstephens/daybook/internal/config"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
}

// Authenticate logs the named user in. The password comes from the
// DAYBOOK_PASSWORD environment variable when set (for scripting),
// otherwise from an interactive prompt.
func (c *Context) Authenticate(username string) (auth.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return auth.Session{}, fmt.Errorf("%w: --user is required", errors.ErrValidation)
	}

	password := os.Getenv("DAYBOOK_PASSWORD")
	if password == "" {
		prompt := huh.NewInput().
			Title(fmt.Sprintf("Password for %s", username)).
			EchoMode(huh.EchoModePassword).
			Value(&password)
		if err := prompt.Run(); err != nil {
			return auth.Session{}, err
		}
	}

	return auth.NewService(c.Store).Login(username, password)
}

// Confirm asks a yes/no question unless assumeYes is set.
func Confirm(question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	confirmed := false
	prompt := huh.NewConfirm().Title(question).Value(&confirmed)
	if err := prompt.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
