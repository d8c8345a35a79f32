package service

import (
	"context"
	"strings"

	"github.com/user/movie-explorer/internal/model"
)

// DetailFetcher 详情接口
type DetailFetcher interface {
	GetDetails(ctx context.Context, id string) (*model.MovieDetails, error)
}

// DetailLoader 详情页加载，同一时间只认最新的一次请求
type DetailLoader struct {
	client  DetailFetcher
	tracker RequestTracker
}

func NewDetailLoader(client DetailFetcher) *DetailLoader {
	return &DetailLoader{client: client}
}

// Load 加载详情；被更新的请求取代时返回 ErrStaleRequest
func (l *DetailLoader) Load(ctx context.Context, id string) (*model.MovieDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	reqCtx, seq := l.tracker.Begin(ctx)
	details, err := l.client.GetDetails(reqCtx, id)
	if !l.tracker.Finish(seq, err) {
		return nil, ErrStaleRequest
	}
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Loading 是否有请求进行中
func (l *DetailLoader) Loading() bool {
	return l.tracker.Loading()
}

// Err 最近一次请求的错误
func (l *DetailLoader) Err() error {
	return l.tracker.Err()
}
