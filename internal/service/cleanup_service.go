package service

import (
	"log"
	"sync"
	"time"
)

// CleanupService 清理服务
type CleanupService struct {
	sessions *SessionRegistry
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewCleanupService 创建清理服务
func NewCleanupService(sessions *SessionRegistry, interval time.Duration) *CleanupService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &CleanupService{
		sessions: sessions,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start 启动定时清理任务
func (s *CleanupService) Start() {
	ticker := time.NewTicker(s.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runCleanup()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop 停止定时任务，可重复调用
func (s *CleanupService) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *CleanupService) runCleanup() int {
	removed := s.sessions.PurgeExpired()
	if removed > 0 {
		log.Printf("[CleanupService] 已清理 %d 个过期会话，剩余 %d 个", removed, s.sessions.Len())
	}
	return removed
}
