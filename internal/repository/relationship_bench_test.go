package repository

import (
    "context"
    "fmt"
    "math/rand"
    "testing"

    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/microblog/internal/model"
)

func setupRelBenchDB(b *testing.B) *gorm.DB {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Silent),
    })
    if err != nil {
        b.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.User{}, &model.Follow{}); err != nil {
        b.Fatalf("migrate: %v", err)
    }
    return db
}

func BenchmarkFollowWrite(b *testing.B) {
    db := setupRelBenchDB(b)
    followRepo := NewFollowRepository(db)
    ctx := context.Background()

    // 预创建部分用户
    users := make([]model.User, 1000)
    for i := range users {
        users[i] = model.User{Username: fmt.Sprintf("u%04d", i), Email: fmt.Sprintf("u%04d@example.com", i), PasswordHash: "p"}
    }
    if err := db.Create(&users).Error; err != nil {
        b.Fatalf("seed users: %v", err)
    }

    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        from := users[rand.Intn(len(users))].ID
        to := users[rand.Intn(len(users))].ID
        if from == to {
            continue
        }
        _ = followRepo.Create(ctx, from, to)
    }
}

func BenchmarkQueryFollowersAndFollowing(b *testing.B) {
    db := setupRelBenchDB(b)
    followRepo := NewFollowRepository(db)
    ctx := context.Background()

    // 构造：u0 有 N 个粉丝，同时 u0 也关注 N 个用户
    const N = 5000
    u0 := model.User{Username: "u0", Email: "u0@example.com", PasswordHash: "p"}
    _ = db.Create(&u0).Error
    for i := 1; i <= N; i++ {
        u := model.User{Username: fmt.Sprintf("u%v", i), Email: fmt.Sprintf("u%v@example.com", i), PasswordHash: "p"}
        _ = db.Create(&u).Error
        _ = followRepo.Create(ctx, u.ID, u0.ID)
        _ = followRepo.Create(ctx, u0.ID, u.ID)
    }

    b.ResetTimer()
    b.Run("ListFollowerIDs", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = followRepo.ListFollowerIDs(ctx, u0.ID, 0, 50)
        }
    })

    b.Run("ListFollowingIDs", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = followRepo.ListFollowingIDs(ctx, u0.ID, 0, 50)
        }
    })

    b.Run("CountFollowers", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = followRepo.CountFollowers(ctx, u0.ID)
        }
    })
}
