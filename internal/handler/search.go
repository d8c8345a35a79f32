package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/user/movie-explorer/internal/service"
	"github.com/user/movie-explorer/internal/utils"
)

type submitSearchRequest struct {
	Query string `json:"query" form:"q"`
}

type changePageRequest struct {
	Page int `json:"page" binding:"required"`
}

// GetSearch 当前搜索状态
func (h *Handler) GetSearch(c *gin.Context) {
	sess, created := h.session(c)
	if created {
		h.runInitialQuery(c, sess)
	}
	utils.Success(c, sess.Search.State())
}

// SubmitSearch 提交新搜索
func (h *Handler) SubmitSearch(c *gin.Context) {
	var req submitSearchRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "参数错误")
		return
	}

	sess, _ := h.session(c)
	state, err := sess.Search.Submit(c.Request.Context(), req.Query)
	if err != nil {
		flowError(c, err)
		return
	}
	utils.Success(c, state)
}

// ChangePage 翻页
func (h *Handler) ChangePage(c *gin.Context) {
	var req changePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "页码参数错误")
		return
	}

	sess, _ := h.session(c)
	state, err := sess.Search.ChangePage(c.Request.Context(), req.Page)
	if err != nil {
		flowError(c, err)
		return
	}
	utils.Success(c, state)
}

// RetrySearch 重试失败的搜索
func (h *Handler) RetrySearch(c *gin.Context) {
	sess, _ := h.session(c)
	state, err := sess.Search.Retry(c.Request.Context())
	if err != nil {
		flowError(c, err)
		return
	}
	utils.Success(c, state)
}

// MovieDetail 电影详情
func (h *Handler) MovieDetail(c *gin.Context) {
	sess, _ := h.session(c)
	details, err := sess.Detail.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		detailError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"movie":       details,
		"genres":      details.Genres(),
		"has_poster":  details.HasPoster(),
		"is_favorite": h.Favorites.IsFavorite(details.ID),
	})
}

func flowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery), errors.Is(err, service.ErrInvalidPage):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalServerError(c, "")
	}
}

func detailError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStaleRequest):
		utils.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	default:
		// 凭证错误与网络错误都属于上游问题
		var searchErr *service.SearchError
		if errors.As(err, &searchErr) {
			utils.BadGateway(c, searchErr.Message)
			return
		}
		utils.InternalServerError(c, "")
	}
}
