package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/user/movie-explorer/internal/model"
	"github.com/user/movie-explorer/internal/service"
	"github.com/user/movie-explorer/internal/utils"
)

// ListFavorites 收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	items := h.Favorites.List()
	utils.Success(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// CheckFavorite 是否已收藏
func (h *Handler) CheckFavorite(c *gin.Context) {
	id := c.Param("id")
	utils.Success(c, gin.H{
		"id":          id,
		"is_favorite": h.Favorites.IsFavorite(id),
	})
}

// AddFavorite 添加收藏
func (h *Handler) AddFavorite(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		utils.BadRequest(c, "参数错误: 需要 imdbID 和 Title")
		return
	}

	if err := h.Favorites.Add(c.Request.Context(), movie); err != nil {
		favoriteError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "已收藏", gin.H{
		"id":          movie.ID,
		"is_favorite": true,
		"count":       h.Favorites.Count(),
	})
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id := c.Param("id")
	if err := h.Favorites.Remove(c.Request.Context(), id); err != nil {
		favoriteError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "已取消收藏", gin.H{
		"id":          id,
		"is_favorite": false,
		"count":       h.Favorites.Count(),
	})
}

// ToggleFavorite 切换收藏状态
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		utils.BadRequest(c, "参数错误: 需要 imdbID 和 Title")
		return
	}

	added, err := h.Favorites.Toggle(c.Request.Context(), movie)
	if err != nil {
		favoriteError(c, err)
		return
	}
	utils.Success(c, gin.H{
		"id":          movie.ID,
		"is_favorite": added,
		"count":       h.Favorites.Count(),
	})
}

func favoriteError(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, service.ErrInvalidMovie) {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.InternalServerError(c, "保存收藏失败")
}
