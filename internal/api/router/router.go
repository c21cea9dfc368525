package router

import (
    "regexp"

    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/microblog/config"
    _ "github.com/d60-Lab/microblog/docs"
    "github.com/d60-Lab/microblog/internal/api/handler"
    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
)

var usernameRx = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Setup 注册中间件与全部路由
func Setup(cfg *config.Config, h *handler.Handler, auth service.AuthService, users repository.UserRepository, sessions *cache.SessionStore) *gin.Engine {
    gin.SetMode(ginMode(cfg.Server.Mode))

    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
            return usernameRx.MatchString(fl.Field().String())
        })
    }

    r := gin.New()
    r.Use(middleware.RequestID())
    r.Use(middleware.AccessLog())
    r.Use(middleware.Recovery())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    if cfg.Otel.Enabled {
        r.Use(otelgin.Middleware("microblog"))
    }

    limited := middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

    // 公开路由
    r.GET("/about", h.About)
    r.GET("/healthz", h.Health)
    r.GET("/register", h.RegisterForm)
    r.POST("/register", limited, h.Register)
    r.GET("/login", h.LoginForm)
    r.POST("/login", limited, h.Login)
    r.GET("/forget", h.ForgetForm)
    r.POST("/forget", h.Forget)
    r.GET("/logout", h.Logout)
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    if cfg.Server.Mode == "debug" {
        // 诊断用的故意崩溃路由，仅 debug 模式注册
        r.GET("/debug/crash", func(c *gin.Context) {
            panic("deliberate crash for diagnostics")
        })
    }

    // 需要登录的路由
    authed := r.Group("", middleware.AuthRequired(auth, users, sessions, cfg.JWT.Cookie))
    authed.GET("/", h.Home)
    authed.POST("/", h.CreatePost)
    authed.GET("/index", h.Home)
    authed.POST("/index", h.CreatePost)
    authed.GET("/explore", h.Explore)
    authed.GET("/user/:username", h.Profile)
    authed.GET("/user/:username/followers", h.Followers)
    authed.GET("/user/:username/following", h.Following)
    authed.GET("/edit_profile", h.EditProfileForm)
    authed.POST("/edit_profile", h.EditProfile)
    authed.POST("/follow/:username", h.Follow)
    authed.POST("/unfollow/:username", h.Unfollow)
    authed.GET("/post/:post_id", h.PostDetail)
    authed.POST("/post/:post_id/comments", h.AddComment)
    authed.POST("/bookmark/:post_id", h.Bookmark)
    authed.POST("/unbookmark/:post_id", h.Unbookmark)
    authed.GET("/bookmarks", h.Bookmarks)

    return r
}

func ginMode(mode string) string {
    switch mode {
    case "debug":
        return gin.DebugMode
    case "test":
        return gin.TestMode
    default:
        return gin.ReleaseMode
    }
}
