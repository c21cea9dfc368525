package middleware

import (
    "net/http"
    "sync"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/microblog/pkg/response"
)

// RateLimit 按客户端 IP 限流（登录 / 注册等敏感路由）
func RateLimit(rps float64, burst int) gin.HandlerFunc {
    var (
        mu       sync.Mutex
        limiters = make(map[string]*rate.Limiter)
    )
    limiterFor := func(ip string) *rate.Limiter {
        mu.Lock()
        defer mu.Unlock()
        l, ok := limiters[ip]
        if !ok {
            l = rate.NewLimiter(rate.Limit(rps), burst)
            limiters[ip] = l
        }
        return l
    }
    return func(c *gin.Context) {
        if !limiterFor(c.ClientIP()).Allow() {
            c.JSON(http.StatusTooManyRequests, response.Response{
                Code:    http.StatusTooManyRequests,
                Message: "too many requests",
            })
            c.Abort()
            return
        }
        c.Next()
    }
}
