package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// ProfileView 资料页视图
type ProfileView struct {
    User           UserView `json:"user"`
    FollowersCount int64    `json:"followers_count"`
    FollowingCount int64    `json:"following_count"`
    IsFollowing    bool     `json:"is_following"`
    IsSelf         bool     `json:"is_self"`
}

// UserService 资料查询与编辑
type UserService interface {
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    Profile(ctx context.Context, viewer *model.User, username string) (*ProfileView, error)
    EditProfile(ctx context.Context, user *model.User, username, aboutMe, location string) (*model.User, error)
}

type userService struct {
    userRepo   repository.UserRepository
    followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
    return &userService{userRepo: userRepo, followRepo: followRepo}
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    u, err := s.userRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    return u, nil
}

func (s *userService) Profile(ctx context.Context, viewer *model.User, username string) (*ProfileView, error) {
    u, err := s.GetByUsername(ctx, username)
    if err != nil {
        return nil, err
    }
    followers, err := s.followRepo.CountFollowers(ctx, u.ID)
    if err != nil {
        return nil, err
    }
    following, err := s.followRepo.CountFollowing(ctx, u.ID)
    if err != nil {
        return nil, err
    }
    view := &ProfileView{
        User:           NewUserView(u),
        FollowersCount: followers,
        FollowingCount: following,
        IsSelf:         viewer != nil && viewer.ID == u.ID,
    }
    if viewer != nil && !view.IsSelf {
        view.IsFollowing, err = s.followRepo.Exists(ctx, viewer.ID, u.ID)
        if err != nil {
            return nil, err
        }
    }
    return view, nil
}

// EditProfile 校验新用户名未被他人占用后更新可变字段
func (s *userService) EditProfile(ctx context.Context, user *model.User, username, aboutMe, location string) (*model.User, error) {
    taken, err := s.userRepo.UsernameTaken(ctx, username, user.ID)
    if err != nil {
        return nil, err
    }
    if taken {
        return nil, ErrUsernameTaken
    }
    if err := s.userRepo.UpdateProfile(ctx, user.ID, username, aboutMe, location); err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return nil, ErrUsernameTaken
        }
        return nil, err
    }
    return s.userRepo.GetByID(ctx, user.ID)
}
