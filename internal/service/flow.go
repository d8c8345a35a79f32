package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/user/movie-explorer/internal/model"
)

// Status 搜索流程状态
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
)

// Searcher 搜索接口
type Searcher interface {
	Search(ctx context.Context, query string, page int) (*model.SearchPage, error)
}

// FlowState 搜索流程快照
type FlowState struct {
	Status     Status        `json:"status"`
	Query      string        `json:"query"`
	Page       int           `json:"page"`
	Items      []model.Movie `json:"items"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
	PageWindow []int         `json:"page_window"`
	HasPrev    bool          `json:"has_prev"`
	HasNext    bool          `json:"has_next"`
	Reason     string        `json:"reason,omitempty"`
	ErrorKind  string        `json:"error_kind,omitempty"`
	Retryable  bool          `json:"retryable"`
	Seq        uint64        `json:"seq"`
}

// SearchFlow 搜索与分页流程
type SearchFlow struct {
	client  Searcher
	tracker RequestTracker

	mu         sync.Mutex
	status     Status
	query      string
	page       int
	items      []model.Movie
	totalCount int
	reason     string
	errKind    string
}

// NewSearchFlow 创建搜索流程
func NewSearchFlow(client Searcher) *SearchFlow {
	return &SearchFlow{
		client: client,
		status: StatusIdle,
		items:  []model.Movie{},
	}
}

// Submit 提交新搜索，页码重置为 1
func (f *SearchFlow) Submit(ctx context.Context, query string) (FlowState, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return f.State(), ErrEmptyQuery
	}
	return f.run(ctx, query, 1), nil
}

// ChangePage 翻页，仅在已有关键词且处于成功或失败状态时有效
func (f *SearchFlow) ChangePage(ctx context.Context, page int) (FlowState, error) {
	if page < 1 {
		return f.State(), ErrInvalidPage
	}

	f.mu.Lock()
	status, query := f.status, f.query
	f.mu.Unlock()

	if query == "" || (status != StatusSuccess && status != StatusFailed) {
		return f.State(), ErrInvalidTransition
	}
	return f.run(ctx, query, page), nil
}

// Retry 失败后按原关键词和页码重试
func (f *SearchFlow) Retry(ctx context.Context) (FlowState, error) {
	f.mu.Lock()
	status, query, page := f.status, f.query, f.page
	f.mu.Unlock()

	if status != StatusFailed {
		return f.State(), ErrInvalidTransition
	}
	return f.run(ctx, query, page), nil
}

func (f *SearchFlow) run(ctx context.Context, query string, page int) FlowState {
	f.mu.Lock()
	reqCtx, seq := f.tracker.Begin(ctx)
	f.status = StatusLoading
	f.query = query
	f.page = page
	f.items = []model.Movie{}
	f.totalCount = 0
	f.reason = ""
	f.errKind = ""
	f.mu.Unlock()

	result, err := f.client.Search(reqCtx, query, page)

	f.mu.Lock()
	if !f.tracker.Finish(seq, err) {
		f.mu.Unlock()
		log.Printf("[SearchFlow] 丢弃过期响应: %q 第 %d 页 (seq=%d)", query, page, seq)
		return f.State()
	}
	f.apply(result, err)
	f.mu.Unlock()

	return f.State()
}

// apply 根据响应切换状态，调用方需持有锁
func (f *SearchFlow) apply(result *model.SearchPage, err error) {
	var searchErr *SearchError
	switch {
	case err == nil && result != nil && len(result.Items) > 0:
		f.status = StatusSuccess
		f.items = result.Items
		f.totalCount = result.TotalCount
	case err == nil, errors.Is(err, ErrNoResults):
		f.status = StatusEmpty
		if err != nil {
			f.reason = err.Error()
			f.errKind = KindNoResults.String()
		}
	default:
		f.status = StatusFailed
		if errors.As(err, &searchErr) {
			f.reason = searchErr.Message
			f.errKind = searchErr.Kind.String()
		} else {
			f.reason = ErrTransport.Message
			f.errKind = KindTransport.String()
		}
		log.Printf("[SearchFlow] 搜索失败: %q 第 %d 页: %v", f.query, f.page, err)
	}
}

// State 当前状态快照
func (f *SearchFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FlowState{
		Status:     f.status,
		Query:      f.query,
		Page:       f.page,
		Items:      append([]model.Movie{}, f.items...),
		TotalCount: f.totalCount,
		Reason:     f.reason,
		ErrorKind:  f.errKind,
		Retryable:  f.status == StatusFailed,
		Seq:        f.tracker.Current(),
	}
	if f.status == StatusSuccess {
		state.TotalPages = TotalPages(f.totalCount)
		state.PageWindow = PageWindow(f.page, state.TotalPages)
		state.HasPrev = HasPrevPage(f.page)
		state.HasNext = HasNextPage(f.page, state.TotalPages)
	}
	return state
}

// Loading 是否有请求进行中
func (f *SearchFlow) Loading() bool {
	return f.tracker.Loading()
}
