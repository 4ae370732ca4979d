package services

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SessionStore is the persistence contract for identity blobs.
type SessionStore interface {
	Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionService is a session gate, not a security boundary: any well-formed
// credential pair is accepted and no real verification happens. It exists so
// the task surface has a recipient identity and a logged-in flag.
type SessionService struct {
	store  SessionStore
	logger zerolog.Logger
	ttl    time.Duration
}

func NewSessionService(store SessionStore, ttl time.Duration, logger zerolog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}
}

// Login checks credential shape only and issues an opaque session token.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	token := uuid.NewString()
	session := model.Session{
		Email:     email,
		LoggedIn:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Put(ctx, token, session, s.ttl); err != nil {
		s.logger.Error().Err(err).Msg("failed to store session")
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("session created")
	return token, nil
}

// Logout deletes the session. Unknown tokens are a no-op.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete session")
		return err
	}
	return nil
}

// Identity resolves a token back to its identity blob.
func (s *SessionService) Identity(ctx context.Context, token string) (*model.Session, error) {
	return s.store.Get(ctx, token)
}

func validateCredentials(email, password string) error {
	var messages []string
	switch {
	case email == "":
		messages = append(messages, "email is required")
	case !emailPattern.MatchString(email):
		messages = append(messages, "email is invalid")
	}
	switch {
	case password == "":
		messages = append(messages, "password is required")
	case len(password) < 6:
		messages = append(messages, "password must be at least 6 characters")
	}
	if len(messages) > 0 {
		return apperrors.NewValidation(messages...)
	}
	return nil
}
