package repository

import (
    "testing"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/microblog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    sqlDB, err := db.DB()
    require.NoError(t, err)
    // 单连接串行化，:memory: 下并发写不会 SQLITE_BUSY
    sqlDB.SetMaxOpenConns(1)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Post{}, &model.Comment{},
        &model.Follow{}, &model.Bookmark{},
    ))
    return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
    t.Helper()
    u := &model.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
    require.NoError(t, db.Create(u).Error)
    return u
}
