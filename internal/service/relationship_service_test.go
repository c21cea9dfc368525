package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestFollowLifecycle(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    e.register(t, "bob")

    changed, err := e.rel.Follow(ctx, alice, "bob")
    require.NoError(t, err)
    assert.True(t, changed)

    bob, err := e.user.GetByUsername(ctx, "bob")
    require.NoError(t, err)
    following, err := e.rel.IsFollowing(ctx, alice.ID, bob.ID)
    require.NoError(t, err)
    assert.True(t, following)

    followers, _, err := e.rel.Counts(ctx, bob.ID)
    require.NoError(t, err)
    assert.Equal(t, int64(1), followers)

    // 重复关注幂等
    changed, err = e.rel.Follow(ctx, alice, "bob")
    require.NoError(t, err)
    assert.False(t, changed)
    followers, _, err = e.rel.Counts(ctx, bob.ID)
    require.NoError(t, err)
    assert.Equal(t, int64(1), followers)

    changed, err = e.rel.Unfollow(ctx, alice, "bob")
    require.NoError(t, err)
    assert.True(t, changed)

    // 未关注时取消关注为无操作
    changed, err = e.rel.Unfollow(ctx, alice, "bob")
    require.NoError(t, err)
    assert.False(t, changed)
}

func TestFollowPolicy(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")

    _, err := e.rel.Follow(ctx, alice, "alice")
    assert.ErrorIs(t, err, ErrFollowSelf)

    _, err = e.rel.Follow(ctx, alice, "ghost")
    assert.ErrorIs(t, err, ErrUserNotFound)

    _, err = e.rel.Unfollow(ctx, alice, "ghost")
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowerListsWithoutCache(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    carol := e.register(t, "carol")
    e.register(t, "bob")

    _, err := e.rel.Follow(ctx, alice, "bob")
    require.NoError(t, err)
    _, err = e.rel.Follow(ctx, carol, "bob")
    require.NoError(t, err)

    bob, err := e.user.GetByUsername(ctx, "bob")
    require.NoError(t, err)

    followers, err := e.rel.ListFollowers(ctx, bob.ID, 1, 10)
    require.NoError(t, err)
    names := []string{followers[0].Username, followers[1].Username}
    assert.ElementsMatch(t, []string{"alice", "carol"}, names)
    assert.NotEmpty(t, followers[0].Avatar)

    following, err := e.rel.ListFollowing(ctx, alice.ID, 1, 10)
    require.NoError(t, err)
    require.Len(t, following, 1)
    assert.Equal(t, "bob", following[0].Username)
}

func TestEditProfile(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    e.register(t, "bob")

    // 占用他人用户名失败
    _, err := e.user.EditProfile(ctx, alice, "bob", "", "")
    assert.ErrorIs(t, err, ErrUsernameTaken)

    // 保留自己当前用户名合法
    updated, err := e.user.EditProfile(ctx, alice, "alice", "hi there", "Ankara")
    require.NoError(t, err)
    assert.Equal(t, "hi there", updated.AboutMe)
    assert.Equal(t, "Ankara", updated.Location)

    updated, err = e.user.EditProfile(ctx, alice, "alice2", "hi", "")
    require.NoError(t, err)
    assert.Equal(t, "alice2", updated.Username)
}

func TestProfileView(t *testing.T) {
    e := newEnv(t)
    ctx := context.Background()
    alice := e.register(t, "alice")
    e.register(t, "bob")

    _, err := e.rel.Follow(ctx, alice, "bob")
    require.NoError(t, err)

    view, err := e.user.Profile(ctx, alice, "bob")
    require.NoError(t, err)
    assert.Equal(t, "bob", view.User.Username)
    assert.Equal(t, int64(1), view.FollowersCount)
    assert.True(t, view.IsFollowing)
    assert.False(t, view.IsSelf)

    self, err := e.user.Profile(ctx, alice, "alice")
    require.NoError(t, err)
    assert.True(t, self.IsSelf)

    _, err = e.user.Profile(ctx, alice, "ghost")
    assert.ErrorIs(t, err, ErrUserNotFound)
}
