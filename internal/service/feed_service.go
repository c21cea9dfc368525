package service

import (
    "context"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// FeedService 时间线装配
type FeedService interface {
    // Home 关注流：自己 + 关注者的帖子，时间倒序
    Home(ctx context.Context, viewer *model.User, page, pageSize int) ([]PostView, error)
    // Explore 全站流
    Explore(ctx context.Context, viewer *model.User, page, pageSize int) ([]PostView, error)
    // Owner 某作者自己的帖子
    Owner(ctx context.Context, viewer *model.User, authorID uint, page, pageSize int) ([]PostView, error)
}

type feedService struct {
    postRepo     repository.PostRepository
    commentRepo  repository.CommentRepository
    bookmarkRepo repository.BookmarkRepository
}

func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, bookmarkRepo repository.BookmarkRepository) FeedService {
    return &feedService{postRepo: postRepo, commentRepo: commentRepo, bookmarkRepo: bookmarkRepo}
}

func (s *feedService) Home(ctx context.Context, viewer *model.User, page, pageSize int) ([]PostView, error) {
    page, pageSize = normalizePage(page, pageSize)
    posts, err := s.postRepo.ListFollowing(ctx, viewer.ID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    return s.buildViews(ctx, viewer, posts)
}

func (s *feedService) Explore(ctx context.Context, viewer *model.User, page, pageSize int) ([]PostView, error) {
    page, pageSize = normalizePage(page, pageSize)
    posts, err := s.postRepo.ListAll(ctx, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    return s.buildViews(ctx, viewer, posts)
}

func (s *feedService) Owner(ctx context.Context, viewer *model.User, authorID uint, page, pageSize int) ([]PostView, error) {
    page, pageSize = normalizePage(page, pageSize)
    posts, err := s.postRepo.ListByAuthor(ctx, authorID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    return s.buildViews(ctx, viewer, posts)
}

// buildViews 批量补齐评论数与收藏状态
func (s *feedService) buildViews(ctx context.Context, viewer *model.User, posts []*model.Post) ([]PostView, error) {
    ids := make([]uint, len(posts))
    for i, p := range posts {
        ids[i] = p.ID
    }
    counts, err := s.commentRepo.CountByPosts(ctx, ids)
    if err != nil {
        return nil, err
    }
    bookmarked := map[uint]bool{}
    if viewer != nil {
        bids, err := s.bookmarkRepo.FilterBookmarked(ctx, viewer.ID, ids)
        if err != nil {
            return nil, err
        }
        for _, id := range bids {
            bookmarked[id] = true
        }
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
            Bookmarked:     bookmarked[p.ID],
        })
    }
    return views, nil
}
