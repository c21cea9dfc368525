package model

import "time"

// Post 内容主体
type Post struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    Body      string    `gorm:"type:varchar(140);not null" json:"body"`
    AuthorID  uint      `gorm:"index:idx_post_author;not null" json:"author_id"`
    Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
    CreatedAt time.Time `gorm:"index" json:"created_at"`
    UpdatedAt time.Time `json:"-"`
}

func (Post) TableName() string { return "posts" }
