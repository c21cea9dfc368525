package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

// Handler 聚合各路由处理器的依赖
type Handler struct {
    authService     service.AuthService
    userService     service.UserService
    relService      service.RelationshipService
    feedService     service.FeedService
    postService     service.PostService
    bookmarkService service.BookmarkService
    sessions        *cache.SessionStore
    jwtCfg          config.JWTConfig
}

func New(
    authService service.AuthService,
    userService service.UserService,
    relService service.RelationshipService,
    feedService service.FeedService,
    postService service.PostService,
    bookmarkService service.BookmarkService,
    sessions *cache.SessionStore,
    jwtCfg config.JWTConfig,
) *Handler {
    return &Handler{
        authService:     authService,
        userService:     userService,
        relService:      relService,
        feedService:     feedService,
        postService:     postService,
        bookmarkService: bookmarkService,
        sessions:        sessions,
        jwtCfg:          jwtCfg,
    }
}

// fail 将服务层错误映射到统一返回体
func fail(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrPostNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrUsernameTaken),
        errors.Is(err, service.ErrEmailTaken),
        errors.Is(err, service.ErrFollowSelf):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrInvalidCredentials):
        response.Unauthorized(c, err.Error(), nil)
    default:
        response.InternalError(c, err)
    }
}

// About 静态页
// @Summary 关于页
// @Tags 页面
// @Produce json
// @Success 200 {object} response.Response
// @Router /about [get]
func (h *Handler) About(c *gin.Context) {
    response.Success(c, gin.H{
        "title": "About",
        "body":  "A small microblog: post short updates, follow people, bookmark what you like.",
    })
}

// Health 存活探针
// @Summary 健康检查
// @Tags 运维
// @Produce json
// @Success 200 {object} response.Response
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
    response.Success(c, gin.H{"status": "ok"})
}
