package repository

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/microblog/internal/model"
)

type FollowRepository interface {
    Create(ctx context.Context, followerID, followeeID uint) error
    Delete(ctx context.Context, followerID, followeeID uint) error
    Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
    CountFollowers(ctx context.Context, userID uint) (int64, error)
    CountFollowing(ctx context.Context, userID uint) (int64, error)
    ListFollowerIDs(ctx context.Context, userID uint, offset, limit int) ([]uint, error)
    ListFollowingIDs(ctx context.Context, followerID uint, offset, limit int) ([]uint, error)
}

type followRepository struct {
    db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followeeID uint) error {
    f := &model.Follow{FollowerID: followerID, FolloweeID: followeeID}
    // 幂等：重复关注不报错
    return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
    return r.db.WithContext(ctx).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userID).Count(&cnt).Error
    return cnt, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&cnt).Error
    return cnt, err
}

func (r *followRepository) ListFollowerIDs(ctx context.Context, userID uint, offset, limit int) ([]uint, error) {
    var ids []uint
    err := r.db.WithContext(ctx).Model(&model.Follow{}).
        Select("follower_id").
        Where("followee_id = ?", userID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Scan(&ids).Error
    return ids, err
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID uint, offset, limit int) ([]uint, error) {
    var ids []uint
    err := r.db.WithContext(ctx).Model(&model.Follow{}).
        Select("followee_id").
        Where("follower_id = ?", followerID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Scan(&ids).Error
    return ids, err
}
