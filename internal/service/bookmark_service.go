package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// BookmarkService 收藏夹
type BookmarkService interface {
    // Bookmark 返回是否新增了收藏（已收藏时为 false，幂等）
    Bookmark(ctx context.Context, user *model.User, postID uint) (bool, error)
    // Unbookmark 返回是否移除了收藏（未收藏时为 false，幂等）
    Unbookmark(ctx context.Context, user *model.User, postID uint) (bool, error)
    HasBookmarked(ctx context.Context, userID, postID uint) (bool, error)
    // List 按排序键返回收藏的帖子，未识别的键回落到收藏时间倒序
    List(ctx context.Context, user *model.User, sortKey string, page, pageSize int) ([]PostView, error)
}

type bookmarkService struct {
    postRepo     repository.PostRepository
    bookmarkRepo repository.BookmarkRepository
    commentRepo  repository.CommentRepository
}

func NewBookmarkService(postRepo repository.PostRepository, bookmarkRepo repository.BookmarkRepository, commentRepo repository.CommentRepository) BookmarkService {
    return &bookmarkService{postRepo: postRepo, bookmarkRepo: bookmarkRepo, commentRepo: commentRepo}
}

func (s *bookmarkService) checkPost(ctx context.Context, postID uint) error {
    if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrPostNotFound
        }
        return err
    }
    return nil
}

func (s *bookmarkService) Bookmark(ctx context.Context, user *model.User, postID uint) (bool, error) {
    if err := s.checkPost(ctx, postID); err != nil {
        return false, err
    }
    exists, err := s.bookmarkRepo.Exists(ctx, user.ID, postID)
    if err != nil {
        return false, err
    }
    if exists {
        return false, nil
    }
    // 并发下重复插入由复合主键吸收
    if err := s.bookmarkRepo.Create(ctx, user.ID, postID); err != nil {
        return false, err
    }
    return true, nil
}

func (s *bookmarkService) Unbookmark(ctx context.Context, user *model.User, postID uint) (bool, error) {
    if err := s.checkPost(ctx, postID); err != nil {
        return false, err
    }
    exists, err := s.bookmarkRepo.Exists(ctx, user.ID, postID)
    if err != nil {
        return false, err
    }
    if !exists {
        return false, nil
    }
    if err := s.bookmarkRepo.Delete(ctx, user.ID, postID); err != nil {
        return false, err
    }
    return true, nil
}

func (s *bookmarkService) HasBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
    return s.bookmarkRepo.Exists(ctx, userID, postID)
}

func (s *bookmarkService) List(ctx context.Context, user *model.User, sortKey string, page, pageSize int) ([]PostView, error) {
    page, pageSize = normalizePage(page, pageSize)
    posts, err := s.bookmarkRepo.ListPosts(ctx, user.ID, sortKey, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    ids := make([]uint, len(posts))
    for i, p := range posts {
        ids[i] = p.ID
    }
    counts, err := s.commentRepo.CountByPosts(ctx, ids)
    if err != nil {
        return nil, err
    }
    views := make([]PostView, 0, len(posts))
    for _, p := range posts {
        views = append(views, PostView{
            ID:             p.ID,
            Body:           p.Body,
            AuthorID:       p.AuthorID,
            AuthorUsername: p.Author.Username,
            AuthorAvatar:   p.Author.Avatar(avatarSize),
            CreatedAt:      p.CreatedAt,
            CommentCount:   counts[p.ID],
            Bookmarked:     true,
        })
    }
    return views, nil
}
