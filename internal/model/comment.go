package model

import "time"

// Comment 帖子评论
type Comment struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    Content   string    `gorm:"type:varchar(300);not null" json:"content"`
    PostID    uint      `gorm:"index:idx_comment_post;not null" json:"post_id"`
    Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
    CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
