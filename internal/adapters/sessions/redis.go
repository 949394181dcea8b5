package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "fieldflow:session:"

// RedisRegistry stores sessions in Redis so several server processes share them.
// Expiry is enforced by the key TTL, which purges stale sessions without a sweep.
type RedisRegistry struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	opts   options
}

var _ portssvc.SessionRegistry = (*RedisRegistry)(nil)

// NewRedisRegistry creates a registry on an existing client. A non-positive ttl means DefaultTTL.
func NewRedisRegistry(client redis.UniversalClient, ttl time.Duration, opts ...Option) *RedisRegistry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRegistry{client: client, ttl: ttl, prefix: defaultKeyPrefix, opts: buildOptions(opts)}
}

func (r *RedisRegistry) key(token string) string {
	return r.prefix + token
}

func (r *RedisRegistry) Issue(ctx context.Context, userID int64) (string, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		token, err := r.opts.newToken()
		if err != nil {
			return "", err
		}
		created, err := r.client.SetNX(ctx, r.key(token), userID, r.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("failed to store session: %w", err)
		}
		if created {
			return token, nil
		}
	}
	return "", ErrTokenExhausted
}

func (r *RedisRegistry) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	userID, err := r.client.Get(ctx, r.key(token)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, true, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
