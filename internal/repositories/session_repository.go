package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	apperrors "nelo-tasks.com/nelo-tasks/internal/errors"
	model "nelo-tasks.com/nelo-tasks/internal/models"
)

const sessionKeyPrefix = "nelo:session:"

// SessionRepository keeps identity blobs in redis, one JSON value per token,
// expiring with the session TTL.
type SessionRepository struct {
	client rueidis.Client
}

func NewSessionRepository(client rueidis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Put(ctx context.Context, token string, session model.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().
		Key(sessionKeyPrefix + token).
		Value(string(data)).
		Ex(ttl).
		Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*model.Session, error) {
	cmd := r.client.B().Get().Key(sessionKeyPrefix + token).Build()
	result := r.client.Do(ctx, cmd)

	data, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	cmd := r.client.B().Del().Key(sessionKeyPrefix + token).Build()
	return r.client.Do(ctx, cmd).Error()
}
