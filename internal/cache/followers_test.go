package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/microblog/internal/model"
)

func setupCacheTest(t *testing.T) (*gorm.DB, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Follow{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return db, rdb, mr
}

func TestFetchFollowersCachesIndexAndSnapshots(t *testing.T) {
	db, rdb, mr := setupCacheTest(t)
	ctx := context.Background()

	u0 := model.User{Username: "u0", Email: "u0@example.com", PasswordHash: "p"}
	require.NoError(t, db.Create(&u0).Error)
	for i := 1; i <= 3; i++ {
		u := model.User{Username: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("u%d@example.com", i), PasswordHash: "p"}
		require.NoError(t, db.Create(&u).Error)
		require.NoError(t, db.Create(&model.Follow{FollowerID: u.ID, FolloweeID: u0.ID}).Error)
	}

	fc := NewFollowerCache(db, rdb, time.Minute)

	snaps, err := fc.FetchFollowers(ctx, u0.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 3)

	// 索引与用户快照都进了缓存
	assert.True(t, mr.Exists(fmt.Sprintf("followers:index:%d", u0.ID)))
	assert.True(t, mr.Exists(fmt.Sprintf("user:%d", snaps[0].ID)))

	// 第二次命中缓存也能取到同样的数据
	again, err := fc.FetchFollowers(ctx, u0.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, snaps, again)

	// 分页只取需要的段
	page2, err := fc.FetchFollowers(ctx, u0.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
}

func TestFetchFollowingAndInvalidate(t *testing.T) {
	db, rdb, mr := setupCacheTest(t)
	ctx := context.Background()

	u0 := model.User{Username: "u0", Email: "u0@example.com", PasswordHash: "p"}
	u1 := model.User{Username: "u1", Email: "u1@example.com", PasswordHash: "p"}
	require.NoError(t, db.Create(&u0).Error)
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&model.Follow{FollowerID: u0.ID, FolloweeID: u1.ID}).Error)

	fc := NewFollowerCache(db, rdb, time.Minute)

	snaps, err := fc.FetchFollowing(ctx, u0.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "u1", snaps[0].Username)
	assert.True(t, mr.Exists(fmt.Sprintf("following:index:%d", u0.ID)))

	fc.Invalidate(ctx, u0.ID)
	assert.False(t, mr.Exists(fmt.Sprintf("following:index:%d", u0.ID)))
	assert.False(t, mr.Exists(fmt.Sprintf("followers:index:%d", u0.ID)))

	// 失效后重查仍然正确
	snaps, err = fc.FetchFollowing(ctx, u0.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestSessionStoreRevocation(t *testing.T) {
	_, rdb, _ := setupCacheTest(t)
	ctx := context.Background()

	s := NewSessionStore(rdb)
	assert.False(t, s.IsRevoked(ctx, "jti-1"))
	require.NoError(t, s.Revoke(ctx, "jti-1", time.Minute))
	assert.True(t, s.IsRevoked(ctx, "jti-1"))

	// 未配置 Redis 时退化为无操作
	var nilStore *SessionStore
	assert.False(t, nilStore.IsRevoked(ctx, "jti-1"))
	assert.NoError(t, nilStore.Revoke(ctx, "jti-1", time.Minute))
}
