package middleware

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionKeyID = "sid"
	ctxSessionID = "session_id"
)

// ClientSession 为每个浏览器分配稳定的会话 ID（存放在 cookie session 中）
func ClientSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, _ := session.Get(sessionKeyID).(string)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			session.Set(sessionKeyID, id)
			if err := session.Save(); err != nil {
				log.Printf("[Session] 保存会话失败: %v", err)
			}
		}

		c.Set(ctxSessionID, id)
		c.Next()
	}
}

// GetSessionID 从上下文获取会话 ID（未经过 ClientSession 中间件时返回空）
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(ctxSessionID); exists {
		return id.(string)
	}
	return ""
}
