package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/model"
)

func TestFollowingFeedUnionAndOrder(t *testing.T) {
    db := setupTestDB(t)
    posts := NewPostRepository(db)
    follows := NewFollowRepository(db)
    ctx := context.Background()

    alice := seedUser(t, db, "alice")
    bob := seedUser(t, db, "bob")
    eve := seedUser(t, db, "eve")

    require.NoError(t, follows.Create(ctx, alice.ID, bob.ID))

    base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    mk := func(author uint, body string, offset time.Duration) {
        p := &model.Post{Body: body, AuthorID: author, CreatedAt: base.Add(offset), UpdatedAt: base.Add(offset)}
        require.NoError(t, posts.Create(ctx, p))
    }
    mk(bob.ID, "hello from bob", 0)
    mk(alice.ID, "hello from alice", time.Minute)
    mk(eve.ID, "unrelated", 2*time.Minute)
    mk(bob.ID, "bob again", 3*time.Minute)

    feed, err := posts.ListFollowing(ctx, alice.ID, 0, 50)
    require.NoError(t, err)

    bodies := make([]string, len(feed))
    for i, p := range feed {
        bodies[i] = p.Body
    }
    // 包含自己与被关注者的帖子，排除无关作者，时间倒序
    assert.Equal(t, []string{"bob again", "hello from alice", "hello from bob"}, bodies)
    for i := 1; i < len(feed); i++ {
        assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt))
    }
    // Preload 作者
    assert.Equal(t, "bob", feed[0].Author.Username)
}

func TestOwnerAndGlobalFeeds(t *testing.T) {
    db := setupTestDB(t)
    posts := NewPostRepository(db)
    ctx := context.Background()

    alice := seedUser(t, db, "alice")
    bob := seedUser(t, db, "bob")

    base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    for i, body := range []string{"a1", "b1", "a2"} {
        author := alice.ID
        if body == "b1" {
            author = bob.ID
        }
        p := &model.Post{Body: body, AuthorID: author, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
        require.NoError(t, posts.Create(ctx, p))
    }

    own, err := posts.ListByAuthor(ctx, alice.ID, 0, 10)
    require.NoError(t, err)
    require.Len(t, own, 2)
    assert.Equal(t, "a2", own[0].Body)
    assert.Equal(t, "a1", own[1].Body)

    all, err := posts.ListAll(ctx, 0, 10)
    require.NoError(t, err)
    require.Len(t, all, 3)
    assert.Equal(t, []string{"a2", "b1", "a1"}, []string{all[0].Body, all[1].Body, all[2].Body})
}
