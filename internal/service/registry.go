package service

import (
	"sync"
	"time"

	"github.com/user/movie-explorer/internal/utils"
)

// ClientSession 单个浏览器会话持有的搜索流程与详情加载器
type ClientSession struct {
	ID     string
	Search *SearchFlow
	Detail *DetailLoader
}

// SessionRegistry 会话注册表，按 LRU + TTL 淘汰
type SessionRegistry struct {
	api      MovieAPI
	mu       sync.Mutex
	sessions *utils.TTLCache[*ClientSession]
}

// NewSessionRegistry 创建会话注册表
func NewSessionRegistry(api MovieAPI, size int, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		api:      api,
		sessions: utils.NewTTLCache[*ClientSession](size, ttl),
	}
}

// Get 获取会话并刷新过期时间
func (r *SessionRegistry) Get(id string) (*ClientSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions.Get(id)
	if ok {
		r.sessions.Set(id, sess)
	}
	return sess, ok
}

// GetOrCreate 获取会话，不存在时创建；created 表示是否新建
func (r *SessionRegistry) GetOrCreate(id string) (sess *ClientSession, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions.Get(id); ok {
		r.sessions.Set(id, sess)
		return sess, false
	}

	sess = &ClientSession{
		ID:     id,
		Search: NewSearchFlow(r.api),
		Detail: NewDetailLoader(r.api),
	}
	r.sessions.Set(id, sess)
	return sess, true
}

// Len 当前会话数
func (r *SessionRegistry) Len() int {
	return r.sessions.Len()
}

// PurgeExpired 清理过期会话
func (r *SessionRegistry) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.PurgeExpired()
}
