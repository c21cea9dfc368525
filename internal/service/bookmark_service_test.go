package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/repository"
)

func TestBookmarkIdempotentRoundTrip(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    bob := e.register(t, "bob")

    p := e.publishAt(t, bob, "hello", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

    changed, err := e.bookmark.Bookmark(ctx, alice, p.ID)
    require.NoError(t, err)
    assert.True(t, changed)

    changed, err = e.bookmark.Bookmark(ctx, alice, p.ID)
    require.NoError(t, err)
    assert.False(t, changed)

    has, err := e.bookmark.HasBookmarked(ctx, alice.ID, p.ID)
    require.NoError(t, err)
    assert.True(t, has)

    changed, err = e.bookmark.Unbookmark(ctx, alice, p.ID)
    require.NoError(t, err)
    assert.True(t, changed)

    changed, err = e.bookmark.Unbookmark(ctx, alice, p.ID)
    require.NoError(t, err)
    assert.False(t, changed)

    has, err = e.bookmark.HasBookmarked(ctx, alice.ID, p.ID)
    require.NoError(t, err)
    assert.False(t, has)
}

func TestBookmarkMissingPost(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")

    _, err := e.bookmark.Bookmark(ctx, alice, 12345)
    assert.ErrorIs(t, err, ErrPostNotFound)

    _, err = e.bookmark.Unbookmark(ctx, alice, 12345)
    assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBookmarkListSortFallback(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    bob := e.register(t, "bob")

    base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    p1 := e.publishAt(t, bob, "oldest post", base)
    p2 := e.publishAt(t, bob, "newest post", base.Add(time.Hour))

    // 先收藏新帖，再收藏旧帖
    _, err := e.bookmark.Bookmark(ctx, alice, p2.ID)
    require.NoError(t, err)
    time.Sleep(5 * time.Millisecond)
    _, err = e.bookmark.Bookmark(ctx, alice, p1.ID)
    require.NoError(t, err)

    // post_oldest 按发帖时间升序，与收藏顺序无关
    list, err := e.bookmark.List(ctx, alice, repository.SortPostOldest, 1, 10)
    require.NoError(t, err)
    require.Len(t, list, 2)
    assert.Equal(t, "oldest post", list[0].Body)
    assert.True(t, list[0].Bookmarked)

    // 未识别的键回落到收藏时间倒序
    list, err = e.bookmark.List(ctx, alice, "whatever", 1, 10)
    require.NoError(t, err)
    require.Len(t, list, 2)
    assert.Equal(t, "oldest post", list[0].Body)
}
