package model

import (
    "crypto/md5"
    "fmt"
    "strings"
    "time"
)

// User 用户主体
type User struct {
    ID           uint      `gorm:"primaryKey" json:"id"`
    Username     string    `gorm:"type:varchar(64);uniqueIndex:ux_user_username;not null" json:"username"`
    Email        string    `gorm:"type:varchar(120);uniqueIndex:ux_user_email;not null" json:"email"`
    PasswordHash string    `gorm:"type:varchar(256)" json:"-"`
    AboutMe      string    `gorm:"type:varchar(140)" json:"about_me"`
    Location     string    `gorm:"type:varchar(100)" json:"location"`
    LastSeen     time.Time `json:"last_seen"`
    CreatedAt    time.Time `json:"created_at"`
    UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

// Avatar 由邮箱小写 md5 生成 gravatar 地址
func (u *User) Avatar(size int) string {
    digest := md5.Sum([]byte(strings.ToLower(u.Email)))
    return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", digest, size)
}
