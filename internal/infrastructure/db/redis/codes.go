package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

// CodeStore keeps short-lived verification codes in Redis. Expiry is enforced
// by the key TTL; an expired code is indistinguishable from an unknown one.
// Key format: verify:<kind>:<code>
type CodeStore struct {
	client *redis.Client
}

// NewCodeStore creates a CodeStore wrapping the given Redis client.
func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

func (s *CodeStore) Put(ctx context.Context, kind, code, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(kind, code), value, ttl).Err(); err != nil {
		return domain.NewDatabaseError("saving your verification code", "codes.set", err)
	}
	return nil
}

// Get returns the value stored for the code, or "" when the code is unknown
// or has expired.
func (s *CodeStore) Get(ctx context.Context, kind, code string) (string, error) {
	value, err := s.client.Get(ctx, s.key(kind, code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", domain.NewDatabaseError("checking your verification code", "codes.get", err)
	}
	return value, nil
}

func (s *CodeStore) Delete(ctx context.Context, kind, code string) error {
	if err := s.client.Del(ctx, s.key(kind, code)).Err(); err != nil {
		return domain.NewDatabaseError("removing your verification code", "codes.del", err)
	}
	return nil
}

func (s *CodeStore) key(kind, code string) string {
	return fmt.Sprintf("verify:%s:%s", kind, code)
}
