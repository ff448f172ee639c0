// Package session resolves opaque session tokens through Redis. A session is
// stored under "session:<token>" as a JSON document and expires with its key.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

type record struct {
	Email string `json:"email"`
}

// RedisStore implements ports.SessionResolver.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Resolve returns nil for unknown, expired and malformed sessions.
func (s *RedisStore) Resolve(ctx context.Context, token string) (*ports.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	var rec record
	if err = json.Unmarshal(raw, &rec); err != nil || strings.TrimSpace(rec.Email) == "" {
		return nil, nil
	}
	return &ports.Identity{Email: rec.Email}, nil
}

// Open mints a token for email that stays valid for ttl.
func (s *RedisStore) Open(ctx context.Context, email string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if ttl <= 0 {
		return "", errs.NewValueIsOutOfRangeError("ttl", ttl, time.Second, "unbounded")
	}

	raw, err := json.Marshal(record{Email: email})
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err = s.client.Set(ctx, keyPrefix+token, raw, ttl).Err(); err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	return token, nil
}

// Close removes a session. Closing an unknown token is not an error.
func (s *RedisStore) Close(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
