package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore 记录已注销的会话 jti，登出后的 token 在到期前不可重放。
// 未配置 Redis 时为 nil，所有方法退化为无操作。
type SessionStore struct {
	cache *redis.Client
}

func NewSessionStore(cache *redis.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

func (s *SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s == nil || s.cache == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.cache.Set(ctx, "session:revoked:"+jti, "1", ttl).Err()
}

func (s *SessionStore) IsRevoked(ctx context.Context, jti string) bool {
	if s == nil || s.cache == nil {
		return false
	}
	n, err := s.cache.Exists(ctx, "session:revoked:"+jti).Result()
	return err == nil && n > 0
}
