package middleware

import (
    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID 透传或生成请求 ID
func RequestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        rid := c.GetHeader(RequestIDHeader)
        if rid == "" {
            rid = uuid.New().String()
        }
        c.Set("requestID", rid)
        c.Header(RequestIDHeader, rid)
        c.Next()
    }
}
