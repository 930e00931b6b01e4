package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/models"
	"slotwise/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore parks editing sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.EditSession, error)
	Put(ctx context.Context, sess *models.EditSession) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	ttl time.Duration
}

// NewRedisSessionStore returns a SessionStore backed by the session cache
// client. Every Put refreshes the TTL, so an active session stays alive.
func NewRedisSessionStore(ttl time.Duration) SessionStore {
	return &redisSessionStore{ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "editsession:" + sessionID
}

func (r *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.EditSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load editing session: %w", err)
	}
	var sess models.EditSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode editing session: %w", err)
	}
	if sess.Availability == nil {
		sess.Availability = models.WeeklyAvailability{}
	}
	if sess.SpecialDates == nil {
		sess.SpecialDates = models.SpecialDates{}
	}
	return &sess, nil
}

func (r *redisSessionStore) Put(ctx context.Context, sess *models.EditSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode editing session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKey(sess.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store editing session: %w", err)
	}
	return nil
}

func (r *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete editing session: %w", err)
	}
	return nil
}
