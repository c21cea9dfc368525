package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// UserSnapshot contains minimal user info required by follower/following pages.
type UserSnapshot struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	AboutMe  string `json:"about_me"`
}

// FollowerCache caches follower/following id pages as Redis lists plus
// per-user snapshot keys, falling back to the primary store on miss.
type FollowerCache struct {
	db    *gorm.DB
	cache *redis.Client
	ttl   time.Duration
}

func NewFollowerCache(db *gorm.DB, cache *redis.Client, ttl time.Duration) *FollowerCache {
	return &FollowerCache{db: db, cache: cache, ttl: ttl}
}

// FetchFollowers returns one page of users following userID.
func (s *FollowerCache) FetchFollowers(ctx context.Context, userID uint, page, size int) ([]UserSnapshot, error) {
	return s.fetch(ctx, followerIndexKey(userID), "followee_id", "follower_id", userID, page, size)
}

// FetchFollowing returns one page of users userID follows.
func (s *FollowerCache) FetchFollowing(ctx context.Context, userID uint, page, size int) ([]UserSnapshot, error) {
	return s.fetch(ctx, followingIndexKey(userID), "follower_id", "followee_id", userID, page, size)
}

// Invalidate drops both edge indexes for userID after a follow graph change.
func (s *FollowerCache) Invalidate(ctx context.Context, userID uint) {
	_ = s.cache.Del(ctx, followerIndexKey(userID), followingIndexKey(userID)).Err()
}

func followerIndexKey(userID uint) string  { return fmt.Sprintf("followers:index:%d", userID) }
func followingIndexKey(userID uint) string { return fmt.Sprintf("following:index:%d", userID) }

func (s *FollowerCache) fetch(ctx context.Context, key, whereCol, selectCol string, userID uint, page, size int) ([]UserSnapshot, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	start := (page - 1) * size
	end := start + size - 1

	// Use LRANGE to get only the needed IDs
	var ids []string
	if exists, _ := s.cache.Exists(ctx, key).Result(); exists > 0 {
		ids, _ = s.cache.LRange(ctx, key, int64(start), int64(end)).Result()
	}

	// Cache miss: load the full id index and store it as a Redis List
	if len(ids) == 0 {
		allIDs, err := s.loadIDsAndCache(ctx, key, whereCol, selectCol, userID)
		if err != nil {
			return nil, err
		}
		if start >= len(allIDs) {
			return []UserSnapshot{}, nil
		}
		endIdx := start + size
		if endIdx > len(allIDs) {
			endIdx = len(allIDs)
		}
		ids = allIDs[start:endIdx]
	}

	return s.loadUsers(ctx, ids)
}

func (s *FollowerCache) loadIDsAndCache(ctx context.Context, key, whereCol, selectCol string, userID uint) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Select(selectCol).
		Where(whereCol+" = ?", userID).
		Order("created_at DESC").
		Scan(&ids).Error; err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		pipe := s.cache.Pipeline()
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, interfaceSlice(ids)...)
		pipe.Expire(ctx, key, s.ttl)
		pipe.Exec(ctx)
	}
	return ids, nil
}

func (s *FollowerCache) loadUsers(ctx context.Context, ids []string) ([]UserSnapshot, error) {
	if len(ids) == 0 {
		return []UserSnapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf("user:%s", id)
	}

	cached := make(map[string]UserSnapshot, len(ids))
	if vals, err := s.cache.MGet(ctx, keys...).Result(); err == nil {
		for i, v := range vals {
			if v == nil {
				continue
			}
			if str, ok := v.(string); ok {
				var snap UserSnapshot
				if uErr := json.Unmarshal([]byte(str), &snap); uErr == nil {
					cached[ids[i]] = snap
				}
			}
		}
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		var users []model.User
		if err := s.db.WithContext(ctx).Where("id IN ?", missing).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			snap := UserSnapshot{ID: u.ID, Username: u.Username, Email: u.Email, AboutMe: u.AboutMe}
			id := fmt.Sprintf("%d", u.ID)
			cached[id] = snap
			if payload, err := json.Marshal(snap); err == nil {
				_ = s.cache.Set(ctx, fmt.Sprintf("user:%s", id), payload, s.ttl).Err()
			}
		}
	}

	result := make([]UserSnapshot, 0, len(ids))
	for _, id := range ids {
		if snap, ok := cached[id]; ok {
			result = append(result, snap)
		}
	}
	return result, nil
}

func interfaceSlice(strs []string) []interface{} {
	result := make([]interface{}, len(strs))
	for i, s := range strs {
		result[i] = s
	}
	return result
}
