package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/microblog/internal/model"
)

func seedBookmarkFixture(t *testing.T) (ctx context.Context, repo BookmarkRepository, userID uint, postIDs []uint) {
    t.Helper()
    db := setupTestDB(t)
    repo = NewBookmarkRepository(db)
    ctx = context.Background()

    u := seedUser(t, db, "alice")
    author := seedUser(t, db, "bob")

    base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
    for i := 0; i < 3; i++ {
        p := &model.Post{Body: "post", AuthorID: author.ID, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
        require.NoError(t, db.Create(p).Error)
        postIDs = append(postIDs, p.ID)
    }
    return ctx, repo, u.ID, postIDs
}

func TestBookmarkRoundTrip(t *testing.T) {
    ctx, repo, userID, postIDs := seedBookmarkFixture(t)

    require.NoError(t, repo.Create(ctx, userID, postIDs[0]))
    ok, err := repo.Exists(ctx, userID, postIDs[0])
    require.NoError(t, err)
    assert.True(t, ok)

    require.NoError(t, repo.Delete(ctx, userID, postIDs[0]))
    ok, err = repo.Exists(ctx, userID, postIDs[0])
    require.NoError(t, err)
    assert.False(t, ok)
}

func TestBookmarkTwiceYieldsSingleRow(t *testing.T) {
    ctx, repo, userID, postIDs := seedBookmarkFixture(t)

    require.NoError(t, repo.Create(ctx, userID, postIDs[1]))
    require.NoError(t, repo.Create(ctx, userID, postIDs[1]))

    cnt, err := repo.Count(ctx, userID)
    require.NoError(t, err)
    assert.Equal(t, int64(1), cnt)
}

func TestBookmarkListSortKeys(t *testing.T) {
    ctx, repo, userID, postIDs := seedBookmarkFixture(t)

    // 收藏顺序与发帖顺序相反：先收藏最新的帖子
    require.NoError(t, repo.Create(ctx, userID, postIDs[2]))
    time.Sleep(5 * time.Millisecond)
    require.NoError(t, repo.Create(ctx, userID, postIDs[0]))
    time.Sleep(5 * time.Millisecond)
    require.NoError(t, repo.Create(ctx, userID, postIDs[1]))

    ids := func(posts []*model.Post) []uint {
        out := make([]uint, len(posts))
        for i, p := range posts {
            out[i] = p.ID
        }
        return out
    }

    got, err := repo.ListPosts(ctx, userID, SortBookmarkNewest, 0, 10)
    require.NoError(t, err)
    assert.Equal(t, []uint{postIDs[1], postIDs[0], postIDs[2]}, ids(got))

    got, err = repo.ListPosts(ctx, userID, SortBookmarkOldest, 0, 10)
    require.NoError(t, err)
    assert.Equal(t, []uint{postIDs[2], postIDs[0], postIDs[1]}, ids(got))

    // 与收藏顺序无关，按发帖时间排序
    got, err = repo.ListPosts(ctx, userID, SortPostOldest, 0, 10)
    require.NoError(t, err)
    assert.Equal(t, []uint{postIDs[0], postIDs[1], postIDs[2]}, ids(got))

    got, err = repo.ListPosts(ctx, userID, SortPostNewest, 0, 10)
    require.NoError(t, err)
    assert.Equal(t, []uint{postIDs[2], postIDs[1], postIDs[0]}, ids(got))

    // 未识别的排序键静默回落到收藏时间倒序
    got, err = repo.ListPosts(ctx, userID, "bogus", 0, 10)
    require.NoError(t, err)
    assert.Equal(t, []uint{postIDs[1], postIDs[0], postIDs[2]}, ids(got))
}

func TestFilterBookmarked(t *testing.T) {
    ctx, repo, userID, postIDs := seedBookmarkFixture(t)

    require.NoError(t, repo.Create(ctx, userID, postIDs[0]))
    require.NoError(t, repo.Create(ctx, userID, postIDs[2]))

    got, err := repo.FilterBookmarked(ctx, userID, postIDs)
    require.NoError(t, err)
    assert.ElementsMatch(t, []uint{postIDs[0], postIDs[2]}, got)

    got, err = repo.FilterBookmarked(ctx, userID, nil)
    require.NoError(t, err)
    assert.Empty(t, got)
}
