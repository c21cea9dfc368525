package middleware

import (
    "fmt"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/microblog/pkg/logger"
    "github.com/d60-Lab/microblog/pkg/response"
)

// Recovery panic 恢复，上报 sentry（已初始化时）
func Recovery() gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if r := recover(); r != nil {
                if hub := sentry.CurrentHub(); hub.Client() != nil {
                    hub.Recover(r)
                }
                logger.Error("panic recovered",
                    zap.Any("error", r),
                    zap.String("path", c.Request.URL.Path),
                    zap.String("request_id", c.GetString("requestID")),
                )
                response.InternalError(c, fmt.Errorf("internal server error"))
                c.Abort()
            }
        }()
        c.Next()
    }
}
