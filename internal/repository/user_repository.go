package repository

import (
    "context"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, user *model.User) error
    GetByID(ctx context.Context, id uint) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    ListByIDs(ctx context.Context, ids []uint) ([]*model.User, error)
    // UsernameTaken 检查用户名是否被 excludeID 之外的用户占用
    UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
    EmailTaken(ctx context.Context, email string) (bool, error)
    UpdateProfile(ctx context.Context, id uint, username, aboutMe, location string) error
    TouchLastSeen(ctx context.Context, id uint, at time.Time) error
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
    return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []uint) ([]*model.User, error) {
    if len(ids) == 0 {
        return []*model.User{}, nil
    }
    var users []*model.User
    if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
        return nil, err
    }
    // 保持传入 id 的顺序
    byID := make(map[uint]*model.User, len(users))
    for _, u := range users {
        byID[u.ID] = u
    }
    res := make([]*model.User, 0, len(ids))
    for _, id := range ids {
        if u, ok := byID[id]; ok {
            res = append(res, u)
        }
    }
    return res, nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
    var cnt int64
    q := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username)
    if excludeID != 0 {
        q = q.Where("id <> ?", excludeID)
    }
    if err := q.Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, username, aboutMe, location string) error {
    return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
        Updates(map[string]any{"username": username, "about_me": aboutMe, "location": location}).Error
}

func (r *userRepository) TouchLastSeen(ctx context.Context, id uint, at time.Time) error {
    return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
        UpdateColumn("last_seen", at).Error
}
