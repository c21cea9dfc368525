package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
)

type PostRepository interface {
    Create(ctx context.Context, post *model.Post) error
    GetByID(ctx context.Context, id uint) (*model.Post, error)
    // ListByAuthor 个人页时间线，按发布时间倒序
    ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]*model.Post, error)
    // ListFollowing 关注流：被关注者的帖子 ∪ 自己的帖子
    ListFollowing(ctx context.Context, userID uint, offset, limit int) ([]*model.Post, error)
    // ListAll 全站时间线（explore）
    ListAll(ctx context.Context, offset, limit int) ([]*model.Post, error)
}

type postRepository struct {
    db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
    return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
    var p model.Post
    if err := r.db.WithContext(ctx).Preload("Author").First(&p, id).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).Preload("Author").
        Where("author_id = ?", authorID).
        Order("created_at DESC, id DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) ListFollowing(ctx context.Context, userID uint, offset, limit int) ([]*model.Post, error) {
    sub := r.db.Model(&model.Follow{}).Select("followee_id").Where("follower_id = ?", userID)
    var res []*model.Post
    err := r.db.WithContext(ctx).Preload("Author").
        Where("author_id IN (?) OR author_id = ?", sub, userID).
        Order("created_at DESC, id DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).Preload("Author").
        Order("created_at DESC, id DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}
