package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the server-side session registry. A token
// whose ID is absent from the registry is treated as torn down, which makes
// logout effective even while the cookie itself is still unexpired.
type SessionStoreInterface interface {
	Save(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, tokenID string) (userID uint, err error)
	Revoke(ctx context.Context, tokenID string) error
}

// SessionStore keeps active session IDs in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Save registers a session ID with TTL.
func (s *SessionStore) Save(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	payload, err := json.Marshal(map[string]interface{}{"user_id": userID})
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+tokenID, payload, ttl)
}

// Lookup returns the user ID bound to an active session, or an error when the
// session is unknown or revoked.
func (s *SessionStore) Lookup(ctx context.Context, tokenID string) (uint, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil || data == nil {
		return 0, fmt.Errorf("session not found")
	}

	var sessionData map[string]interface{}
	if err := json.Unmarshal(data, &sessionData); err != nil {
		return 0, fmt.Errorf("unmarshal session data: %w", err)
	}

	uid, ok := sessionData["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user_id in session data")
	}
	return uint(uid), nil
}

// Revoke removes a session ID from the registry.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+tokenID)
}
