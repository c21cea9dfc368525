package service

import (
    "context"
    "errors"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// PostDetail 帖子详情（含评论）
type PostDetail struct {
    Post     PostView      `json:"post"`
    Comments []CommentView `json:"comments"`
}

// PostService 发帖与评论
type PostService interface {
    Publish(ctx context.Context, author *model.User, body string) (*model.Post, error)
    AddComment(ctx context.Context, postID uint, content string) (*model.Comment, error)
    Detail(ctx context.Context, viewer *model.User, postID uint) (*PostDetail, error)
}

type postService struct {
    postRepo     repository.PostRepository
    commentRepo  repository.CommentRepository
    bookmarkRepo repository.BookmarkRepository
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, bookmarkRepo repository.BookmarkRepository) PostService {
    return &postService{postRepo: postRepo, commentRepo: commentRepo, bookmarkRepo: bookmarkRepo}
}

func (s *postService) Publish(ctx context.Context, author *model.User, body string) (*model.Post, error) {
    now := time.Now().UTC()
    post := &model.Post{Body: body, AuthorID: author.ID, CreatedAt: now, UpdatedAt: now}
    if err := s.postRepo.Create(ctx, post); err != nil {
        return nil, err
    }
    post.Author = *author
    return post, nil
}

func (s *postService) AddComment(ctx context.Context, postID uint, content string) (*model.Comment, error) {
    if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrPostNotFound
        }
        return nil, err
    }
    c := &model.Comment{Content: content, PostID: postID, CreatedAt: time.Now().UTC()}
    if err := s.commentRepo.Create(ctx, c); err != nil {
        return nil, err
    }
    return c, nil
}

func (s *postService) Detail(ctx context.Context, viewer *model.User, postID uint) (*PostDetail, error) {
    post, err := s.postRepo.GetByID(ctx, postID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrPostNotFound
        }
        return nil, err
    }
    comments, err := s.commentRepo.ListByPost(ctx, postID)
    if err != nil {
        return nil, err
    }
    bookmarked := false
    if viewer != nil {
        bookmarked, err = s.bookmarkRepo.Exists(ctx, viewer.ID, postID)
        if err != nil {
            return nil, err
        }
    }
    detail := &PostDetail{
        Post: PostView{
            ID:             post.ID,
            Body:           post.Body,
            AuthorID:       post.AuthorID,
            AuthorUsername: post.Author.Username,
            AuthorAvatar:   post.Author.Avatar(avatarSize),
            CreatedAt:      post.CreatedAt,
            CommentCount:   int64(len(comments)),
            Bookmarked:     bookmarked,
        },
        Comments: make([]CommentView, 0, len(comments)),
    }
    for _, c := range comments {
        detail.Comments = append(detail.Comments, NewCommentView(c))
    }
    return detail, nil
}
