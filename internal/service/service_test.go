package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// env 一组建好的服务与仓储，跑在 sqlite :memory: 上
type env struct {
    db        *gorm.DB
    users     repository.UserRepository
    posts     repository.PostRepository
    comments  repository.CommentRepository
    follows   repository.FollowRepository
    bookmarks repository.BookmarkRepository

    auth      AuthService
    user      UserService
    rel       RelationshipService
    feed      FeedService
    post      PostService
    bookmark  BookmarkService
}

func newEnv(t *testing.T) *env {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    sqlDB, err := db.DB()
    require.NoError(t, err)
    sqlDB.SetMaxOpenConns(1)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Post{}, &model.Comment{},
        &model.Follow{}, &model.Bookmark{},
    ))

    e := &env{db: db}
    e.users = repository.NewUserRepository(db)
    e.posts = repository.NewPostRepository(db)
    e.comments = repository.NewCommentRepository(db)
    e.follows = repository.NewFollowRepository(db)
    e.bookmarks = repository.NewBookmarkRepository(db)

    jwtCfg := config.JWTConfig{Secret: "test-secret", TTL: time.Hour, Cookie: "session"}
    e.auth = NewAuthService(e.users, jwtCfg)
    e.user = NewUserService(e.users, e.follows)
    e.rel = NewRelationshipService(e.users, e.follows, nil)
    e.feed = NewFeedService(e.posts, e.comments, e.bookmarks)
    e.post = NewPostService(e.posts, e.comments, e.bookmarks)
    e.bookmark = NewBookmarkService(e.posts, e.bookmarks, e.comments)
    return e
}

func (e *env) register(t *testing.T, username string) *model.User {
    t.Helper()
    u, err := e.auth.Register(context.Background(), username, username+"@example.com", "secret123")
    require.NoError(t, err)
    return u
}

func (e *env) publishAt(t *testing.T, author *model.User, body string, at time.Time) *model.Post {
    t.Helper()
    p := &model.Post{Body: body, AuthorID: author.ID, CreatedAt: at, UpdatedAt: at}
    require.NoError(t, e.posts.Create(context.Background(), p))
    return p
}
