package service

import (
	"context"
	"sync"
)

// RequestTracker 跟踪"当前"请求：新请求会取消旧请求，旧请求的结果被丢弃
type RequestTracker struct {
	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	loading bool
	err     error
}

// Begin 开始一个新请求，返回派生的 ctx 与序号
func (t *RequestTracker) Begin(parent context.Context) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.seq++
	t.cancel = cancel
	t.loading = true
	t.err = nil
	return ctx, t.seq
}

// Finish 结束请求；序号已过期时返回 false，结果应被丢弃
func (t *RequestTracker) Finish(seq uint64, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.loading = false
	t.err = err
	return true
}

// Current 最新请求的序号
func (t *RequestTracker) Current() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

// Loading 当前请求是否进行中
func (t *RequestTracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Err 最近一次完成的请求的错误
func (t *RequestTracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
