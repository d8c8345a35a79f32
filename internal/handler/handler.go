package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movie-explorer/internal/config"
	"github.com/user/movie-explorer/internal/middleware"
	"github.com/user/movie-explorer/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Config    *config.Config
	Favorites *service.FavoritesStore
	Sessions  *service.SessionRegistry
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, favorites *service.FavoritesStore, sessions *service.SessionRegistry) *Handler {
	return &Handler{
		Config:    cfg,
		Favorites: favorites,
		Sessions:  sessions,
	}
}

// session 当前浏览器对应的会话
func (h *Handler) session(c *gin.Context) (*service.ClientSession, bool) {
	return h.Sessions.GetOrCreate(middleware.GetSessionID(c))
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"sessions":  h.Sessions.Len(),
		"favorites": h.Favorites.Count(),
	})
}

// runInitialQuery 新会话首次打开搜索页时执行默认搜索
func (h *Handler) runInitialQuery(c *gin.Context, sess *service.ClientSession) {
	if h.Config.InitialQuery == "" {
		return
	}
	if _, err := sess.Search.Submit(c.Request.Context(), h.Config.InitialQuery); err != nil {
		log.Printf("[Handler] 默认搜索失败: %v", err)
	}
}
