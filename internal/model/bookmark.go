package model

import (
    "time"
)

// Bookmark 收藏关系（user 收藏 post），CreatedAt 即收藏时间
type Bookmark struct {
    UserID uint `gorm:"primaryKey;autoIncrement:false"`
    PostID uint `gorm:"primaryKey;autoIncrement:false"`
    // 复合主键 (user_id, post_id)，避免重复收藏
    CreatedAt time.Time `gorm:"index"`
}

func (Bookmark) TableName() string { return "bookmarks" }
