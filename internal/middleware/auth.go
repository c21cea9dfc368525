package middleware

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

const currentUserKey = "currentUser"

// AuthRequired 解析会话 cookie，加载用户并刷新 last_seen。
// 未认证时返回 401，并附带登录后跳回的 next 路径。
func AuthRequired(auth service.AuthService, users repository.UserRepository, sessions *cache.SessionStore, cookieName string) gin.HandlerFunc {
    return func(c *gin.Context) {
        token, err := c.Cookie(cookieName)
        if err != nil || token == "" {
            abortLogin(c)
            return
        }
        claims, err := auth.ParseSession(token)
        if err != nil {
            abortLogin(c)
            return
        }
        if sessions.IsRevoked(c.Request.Context(), claims.ID) {
            abortLogin(c)
            return
        }
        u, err := users.GetByID(c.Request.Context(), claims.UserID)
        if err != nil {
            abortLogin(c)
            return
        }
        // 每个已认证请求都刷新 last_seen
        now := time.Now().UTC()
        _ = users.TouchLastSeen(c.Request.Context(), u.ID, now)
        u.LastSeen = now

        c.Set(currentUserKey, u)
        c.Next()
    }
}

func abortLogin(c *gin.Context) {
    response.Unauthorized(c, "login required", gin.H{"next": c.Request.URL.Path})
    c.Abort()
}

// CurrentUser 取出 AuthRequired 注入的用户
func CurrentUser(c *gin.Context) *model.User {
    if v, ok := c.Get(currentUserKey); ok {
        if u, ok := v.(*model.User); ok {
            return u
        }
    }
    return nil
}
