package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Session wraps one guest's draft together with its ownership and timing
// metadata. Sessions live in the draft store under a TTL; an abandoned
// wizard simply expires.
type Session struct {
	SessionID string       `json:"sessionId"`
	UserID    string       `json:"userId"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// DraftStore persists wizard sessions between requests.
type DraftStore interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

const draftKeyPrefix = "wizard:"

// redisDraftStore stores sessions as JSON blobs in Redis.
type redisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore returns a DraftStore backed by the given Redis client.
func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}

func (r *redisDraftStore) Save(ctx context.Context, session *Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := r.client.Set(ctx, draftKeyPrefix+session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (r *redisDraftStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := r.client.Get(ctx, draftKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (r *redisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
