package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService 关系链服务
type RelationshipService interface {
    // Follow 返回是否产生了新关注（已关注时为 false，幂等）
    Follow(ctx context.Context, actor *model.User, username string) (bool, error)
    // Unfollow 返回是否删除了关注（未关注时为 false，幂等）
    Unfollow(ctx context.Context, actor *model.User, username string) (bool, error)
    IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
    Counts(ctx context.Context, userID uint) (followers, following int64, err error)
    ListFollowers(ctx context.Context, userID uint, page, pageSize int) ([]UserView, error)
    ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]UserView, error)
}

type relationshipService struct {
    userRepo      repository.UserRepository
    followRepo    repository.FollowRepository
    followerCache *cache.FollowerCache // 可选，nil 时直接查库
}

func NewRelationshipService(userRepo repository.UserRepository, followRepo repository.FollowRepository, followerCache *cache.FollowerCache) RelationshipService {
    return &relationshipService{userRepo: userRepo, followRepo: followRepo, followerCache: followerCache}
}

func (s *relationshipService) resolveTarget(ctx context.Context, actor *model.User, username string) (*model.User, error) {
    target, err := s.userRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    if target.ID == actor.ID {
        return nil, ErrFollowSelf
    }
    return target, nil
}

func (s *relationshipService) Follow(ctx context.Context, actor *model.User, username string) (bool, error) {
    target, err := s.resolveTarget(ctx, actor, username)
    if err != nil {
        return false, err
    }
    exists, err := s.followRepo.Exists(ctx, actor.ID, target.ID)
    if err != nil {
        return false, err
    }
    if exists {
        return false, nil
    }
    // 并发下重复插入由复合主键吸收
    if err := s.followRepo.Create(ctx, actor.ID, target.ID); err != nil {
        return false, err
    }
    s.invalidate(ctx, actor.ID, target.ID)
    return true, nil
}

func (s *relationshipService) Unfollow(ctx context.Context, actor *model.User, username string) (bool, error) {
    target, err := s.resolveTarget(ctx, actor, username)
    if err != nil {
        return false, err
    }
    exists, err := s.followRepo.Exists(ctx, actor.ID, target.ID)
    if err != nil {
        return false, err
    }
    if !exists {
        return false, nil
    }
    if err := s.followRepo.Delete(ctx, actor.ID, target.ID); err != nil {
        return false, err
    }
    s.invalidate(ctx, actor.ID, target.ID)
    return true, nil
}

func (s *relationshipService) invalidate(ctx context.Context, actorID, targetID uint) {
    if s.followerCache == nil {
        return
    }
    s.followerCache.Invalidate(ctx, actorID)
    s.followerCache.Invalidate(ctx, targetID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
    return s.followRepo.Exists(ctx, followerID, followeeID)
}

func (s *relationshipService) Counts(ctx context.Context, userID uint) (int64, int64, error) {
    followers, err := s.followRepo.CountFollowers(ctx, userID)
    if err != nil {
        return 0, 0, err
    }
    following, err := s.followRepo.CountFollowing(ctx, userID)
    if err != nil {
        return 0, 0, err
    }
    return followers, following, nil
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID uint, page, pageSize int) ([]UserView, error) {
    page, pageSize = normalizePage(page, pageSize)
    if s.followerCache != nil {
        snaps, err := s.followerCache.FetchFollowers(ctx, userID, page, pageSize)
        if err == nil {
            return snapshotViews(snaps), nil
        }
        // 缓存失败回落到数据库
    }
    ids, err := s.followRepo.ListFollowerIDs(ctx, userID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    return s.userViews(ctx, ids)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]UserView, error) {
    page, pageSize = normalizePage(page, pageSize)
    if s.followerCache != nil {
        snaps, err := s.followerCache.FetchFollowing(ctx, userID, page, pageSize)
        if err == nil {
            return snapshotViews(snaps), nil
        }
    }
    ids, err := s.followRepo.ListFollowingIDs(ctx, userID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    return s.userViews(ctx, ids)
}

func (s *relationshipService) userViews(ctx context.Context, ids []uint) ([]UserView, error) {
    users, err := s.userRepo.ListByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    views := make([]UserView, 0, len(users))
    for _, u := range users {
        views = append(views, NewUserView(u))
    }
    return views, nil
}

func snapshotViews(snaps []cache.UserSnapshot) []UserView {
    views := make([]UserView, 0, len(snaps))
    for _, snap := range snaps {
        u := model.User{ID: snap.ID, Username: snap.Username, Email: snap.Email, AboutMe: snap.AboutMe}
        views = append(views, UserView{ID: snap.ID, Username: snap.Username, Avatar: u.Avatar(avatarSize), AboutMe: snap.AboutMe})
    }
    return views
}
