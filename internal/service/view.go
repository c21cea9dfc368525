package service

import (
    "time"

    "github.com/d60-Lab/microblog/internal/model"
)

const avatarSize = 80

// UserView 用户视图（列表/资料页）
type UserView struct {
    ID       uint      `json:"id"`
    Username string    `json:"username"`
    Avatar   string    `json:"avatar"`
    AboutMe  string    `json:"about_me,omitempty"`
    Location string    `json:"location,omitempty"`
    LastSeen time.Time `json:"last_seen"`
}

func NewUserView(u *model.User) UserView {
    return UserView{
        ID:       u.ID,
        Username: u.Username,
        Avatar:   u.Avatar(avatarSize),
        AboutMe:  u.AboutMe,
        Location: u.Location,
        LastSeen: u.LastSeen,
    }
}

// PostView 帖子视图（各时间线共用）
type PostView struct {
    ID             uint      `json:"id"`
    Body           string    `json:"body"`
    AuthorID       uint      `json:"author_id"`
    AuthorUsername string    `json:"author_username"`
    AuthorAvatar   string    `json:"author_avatar"`
    CreatedAt      time.Time `json:"created_at"`
    CommentCount   int64     `json:"comment_count"`
    Bookmarked     bool      `json:"bookmarked"`
}

// CommentView 评论视图
type CommentView struct {
    ID        uint      `json:"id"`
    Content   string    `json:"content"`
    CreatedAt time.Time `json:"created_at"`
}

func NewCommentView(c *model.Comment) CommentView {
    return CommentView{ID: c.ID, Content: c.Content, CreatedAt: c.CreatedAt}
}

func normalizePage(page, pageSize int) (int, int) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    return page, pageSize
}
