// Package auth implements registration and credential checks against the
// local store.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/validation"
)

// Session is the authenticated user context held for the process lifetime.
type Session struct {
	UserID   string
	Username string
	Name     string
	Surname  string
}

// DisplayName returns the user's full name, falling back to the username.
func (s Session) DisplayName() string {
	full := strings.TrimSpace(s.Name + " " + s.Surname)
	if full == "" {
		return s.Username
	}
	return full
}

// HashPassword returns the hex SHA-256 digest of the password. Only the
// digest is ever stored.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Register validates the input and creates the user together with a
// defaults preferences row. A taken username surfaces as
// errors.ErrDuplicate; validation failures as errors.ErrValidation.
func (s *Service) Register(in validation.RegistrationInput) (models.User, error) {
	if err := validation.ValidateRegistration(in); err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: HashPassword(in.Password),
		Name:         strings.TrimSpace(in.Name),
		Surname:      strings.TrimSpace(in.Surname),
	}

	if err := s.store.CreateUser(user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login checks the submitted credentials. Any failure, unknown username
// included, yields the same errors.ErrInvalidCredentials so callers cannot
// enumerate usernames.
func (s *Service) Login(username, password string) (Session, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return Session{}, errors.ErrInvalidCredentials
		}
		return Session{}, err
	}

	submitted := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(user.PasswordHash)) != 1 {
		return Session{}, errors.ErrInvalidCredentials
	}

	return Session{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Surname:  user.Surname,
	}, nil
}
