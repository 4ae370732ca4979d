package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

// memorySessionStore is a simple in-memory session store for testing.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]model.Session)}
}

func (m *memorySessionStore) Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = session
	return nil
}

func (m *memorySessionStore) Get(ctx context.Context, token string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, apperrors.ErrInvalidSession
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func newTestSessionService() *SessionService {
	return NewSessionService(newMemorySessionStore(), time.Hour, zerolog.Nop())
}

func TestSessionService_LoginLogoutRoundTrip(t *testing.T) {
	service := newTestSessionService()
	ctx := context.Background()

	token, err := service.Login(ctx, "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	session, err := service.Identity(ctx, token)
	if err != nil {
		t.Fatalf("identity lookup failed: %v", err)
	}
	if session.Email != "user@example.com" || !session.LoggedIn {
		t.Errorf("unexpected session %+v", session)
	}

	if err := service.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := service.Identity(ctx, token); !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Errorf("expected invalid session after logout, got %v", err)
	}
}

func TestSessionService_RejectsMalformedCredentials(t *testing.T) {
	service := newTestSessionService()
	ctx := context.Background()

	cases := map[string][2]string{
		"empty email":    {"", "secret123"},
		"bad email":      {"not-an-email", "secret123"},
		"empty password": {"user@example.com", ""},
		"short password": {"user@example.com", "12345"},
		"both malformed": {"nope", "1"},
	}

	for name, creds := range cases {
		if _, err := service.Login(ctx, creds[0], creds[1]); err == nil {
			t.Errorf("%s: expected validation error", name)
		} else if !apperrors.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestSessionService_UnknownTokenIsInvalid(t *testing.T) {
	service := newTestSessionService()

	_, err := service.Identity(context.Background(), "no-such-token")
	if !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}
