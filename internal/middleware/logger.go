package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// 处理请求
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		sid := shortID(GetSessionID(c))

		if len(c.Errors) > 0 {
			log.Printf("[%s] %s %s %d %v sid=%s errors=%s",
				c.Request.Method, path, c.ClientIP(), status, latency, sid, c.Errors.String())
			return
		}
		log.Printf("[%s] %s %s %d %v sid=%s",
			c.Request.Method, path, c.ClientIP(), status, latency, sid)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
