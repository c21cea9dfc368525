package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/api/handler"
    "github.com/d60-Lab/microblog/internal/api/router"
    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/database"
    "github.com/d60-Lab/microblog/pkg/logger"
    "github.com/d60-Lab/microblog/pkg/tracer"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintf(os.Stderr, "load config: %v\n", err)
        os.Exit(1)
    }
    if err := logger.Init(cfg.Server.Mode); err != nil {
        fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
        os.Exit(1)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    if cfg.Otel.Enabled {
        shutdown, err := tracer.Init(context.Background(), "microblog", cfg.Otel.Endpoint)
        if err != nil {
            logger.Warn("tracer init failed", zap.Error(err))
        } else {
            defer shutdown(context.Background())
        }
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Fatal("init database", zap.Error(err))
    }
    if err := db.AutoMigrate(
        &model.User{}, &model.Post{}, &model.Comment{},
        &model.Follow{}, &model.Bookmark{},
    ); err != nil {
        logger.Fatal("auto migrate", zap.Error(err))
    }

    var rdb *redis.Client
    var followerCache *cache.FollowerCache
    if cfg.Redis.Enabled {
        rdb = redis.NewClient(&redis.Options{
            Addr:     cfg.Redis.Addr,
            Password: cfg.Redis.Password,
            DB:       cfg.Redis.DB,
        })
        if err := rdb.Ping(context.Background()).Err(); err != nil {
            logger.Warn("redis unreachable, caching disabled", zap.Error(err))
            rdb = nil
        } else {
            followerCache = cache.NewFollowerCache(db, rdb, cfg.Redis.TTL)
        }
    }
    sessions := cache.NewSessionStore(rdb)

    userRepo := repository.NewUserRepository(db)
    postRepo := repository.NewPostRepository(db)
    commentRepo := repository.NewCommentRepository(db)
    followRepo := repository.NewFollowRepository(db)
    bookmarkRepo := repository.NewBookmarkRepository(db)

    authService := service.NewAuthService(userRepo, cfg.JWT)
    userService := service.NewUserService(userRepo, followRepo)
    relService := service.NewRelationshipService(userRepo, followRepo, followerCache)
    feedService := service.NewFeedService(postRepo, commentRepo, bookmarkRepo)
    postService := service.NewPostService(postRepo, commentRepo, bookmarkRepo)
    bookmarkService := service.NewBookmarkService(postRepo, bookmarkRepo, commentRepo)

    h := handler.New(authService, userService, relService, feedService, postService, bookmarkService, sessions, cfg.JWT)
    r := router.Setup(cfg, h, authService, userRepo, sessions)

    srv := &http.Server{
        Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
        Handler:           r,
        ReadHeaderTimeout: 10 * time.Second,
    }

    go func() {
        logger.Info("server listening", zap.Int("port", cfg.Server.Port))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Fatal("listen", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(ctx); err != nil {
        logger.Error("shutdown", zap.Error(err))
    }
}
