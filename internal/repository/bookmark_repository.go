package repository

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/microblog/internal/model"
)

// 收藏列表排序键，未识别的值静默回落到 SortBookmarkNewest
const (
    SortBookmarkNewest = "bookmark_newest"
    SortBookmarkOldest = "bookmark_oldest"
    SortPostNewest     = "post_newest"
    SortPostOldest     = "post_oldest"
)

type BookmarkRepository interface {
    Create(ctx context.Context, userID, postID uint) error
    Delete(ctx context.Context, userID, postID uint) error
    Exists(ctx context.Context, userID, postID uint) (bool, error)
    Count(ctx context.Context, userID uint) (int64, error)
    // ListPosts 按 sortKey 返回用户收藏的帖子
    ListPosts(ctx context.Context, userID uint, sortKey string, offset, limit int) ([]*model.Post, error)
    // FilterBookmarked 返回 postIDs 中被该用户收藏的子集
    FilterBookmarked(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
}

type bookmarkRepository struct {
    db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository { return &bookmarkRepository{db: db} }

func (r *bookmarkRepository) Create(ctx context.Context, userID, postID uint) error {
    b := &model.Bookmark{UserID: userID, PostID: postID}
    // 幂等：重复收藏不报错
    return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(b).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID, postID uint) error {
    return r.db.WithContext(ctx).
        Where("user_id = ? AND post_id = ?", userID, postID).
        Delete(&model.Bookmark{}).Error
}

func (r *bookmarkRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Bookmark{}).
        Where("user_id = ? AND post_id = ?", userID, postID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *bookmarkRepository) Count(ctx context.Context, userID uint) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Bookmark{}).Where("user_id = ?", userID).Count(&cnt).Error
    return cnt, err
}

func (r *bookmarkRepository) FilterBookmarked(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
    if len(postIDs) == 0 {
        return nil, nil
    }
    var ids []uint
    err := r.db.WithContext(ctx).Model(&model.Bookmark{}).
        Select("post_id").
        Where("user_id = ? AND post_id IN ?", userID, postIDs).
        Scan(&ids).Error
    return ids, err
}

func (r *bookmarkRepository) ListPosts(ctx context.Context, userID uint, sortKey string, offset, limit int) ([]*model.Post, error) {
    var order string
    switch sortKey {
    case SortBookmarkOldest:
        order = "bookmarks.created_at ASC"
    case SortPostNewest:
        order = "posts.created_at DESC, posts.id DESC"
    case SortPostOldest:
        order = "posts.created_at ASC, posts.id ASC"
    default:
        order = "bookmarks.created_at DESC"
    }
    var res []*model.Post
    err := r.db.WithContext(ctx).Preload("Author").
        Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
        Where("bookmarks.user_id = ?", userID).
        Order(order).
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
