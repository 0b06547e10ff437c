package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the refresh token issued at each login in redis, keyed by
// account id with a TTL matching the token lifetime. Logout deletes the entry,
// which revokes the token before its expiry.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(addr string, password string, db int) *SessionStore {
	return &SessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies connectivity and credentials.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(accountID int) string {
	return fmt.Sprintf("session:%d", accountID)
}

// SaveRefreshToken records the active refresh token for an account.
// A new login replaces the previous session.
func (s *SessionStore) SaveRefreshToken(ctx context.Context, accountID int, token string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(accountID), token, ttl).Err()
}

// GetRefreshToken loads the active refresh token. A missing or expired
// session returns ("", nil).
func (s *SessionStore) GetRefreshToken(ctx context.Context, accountID int) (string, error) {
	val, err := s.client.Get(ctx, sessionKey(accountID)).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteRefreshToken revokes the account's session.
func (s *SessionStore) DeleteRefreshToken(ctx context.Context, accountID int) error {
	return s.client.Del(ctx, sessionKey(accountID)).Err()
}
