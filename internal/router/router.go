package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/user/movie-explorer/internal/handler"
	"github.com/user/movie-explorer/internal/middleware"
)

// SessionName cookie 名称
const SessionName = "movie_explorer"

// New 创建 gin 引擎并挂载中间件
func New(h *handler.Handler) *gin.Engine {
	if h.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 设置 Session 中间件
	store := cookie.NewStore([]byte(h.Config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 天
		HttpOnly: true,
		Secure:   h.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(SessionName, store))
	r.Use(middleware.ClientSession())
	r.Use(middleware.Logger())

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		// 搜索与分页
		api.GET("/search", h.GetSearch)
		api.POST("/search", h.SubmitSearch)
		api.POST("/search/page", h.ChangePage)
		api.POST("/search/retry", h.RetrySearch)

		// 电影详情
		api.GET("/movies/:id", h.MovieDetail)

		// 收藏夹
		api.GET("/favorites", h.ListFavorites)
		api.GET("/favorites/:id", h.CheckFavorite)
		api.POST("/favorites", h.AddFavorite)
		api.POST("/favorites/toggle", h.ToggleFavorite)
		api.DELETE("/favorites/:id", h.RemoveFavorite)
	}
}
