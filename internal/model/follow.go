package model

import (
    "time"
)

// Follow 关注关系（A 关注 B）
type Follow struct {
    FollowerID uint `gorm:"primaryKey;autoIncrement:false"`
    FolloweeID uint `gorm:"primaryKey;autoIncrement:false"`
    // 复合主键 (follower_id, followee_id)，避免重复关注
    CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
