package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/user/movie-explorer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotNotFound 存储槽不存在
var ErrSlotNotFound = errors.New("storage slot not found")

// SlotStore 持久化键值存储，每个 key 对应一个完整的文本值
type SlotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// PostgresSlotStore 基于 postgres 的存储槽
type PostgresSlotStore struct {
	db *gorm.DB
}

func NewPostgresSlotStore(db *gorm.DB) *PostgresSlotStore {
	return &PostgresSlotStore{db: db}
}

// Migrate 建表
func (r *PostgresSlotStore) Migrate() error {
	if err := r.db.AutoMigrate(&model.StorageSlot{}); err != nil {
		return fmt.Errorf("迁移 storage_slots 失败: %w", err)
	}
	return nil
}

// Load 读取存储槽
func (r *PostgresSlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var slot model.StorageSlot
	err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(slot.Value), nil
}

// Save 整体覆盖写入存储槽
func (r *PostgresSlotStore) Save(ctx context.Context, key string, value []byte) error {
	slot := &model.StorageSlot{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(slot).Error
}

// MemorySlotStore 进程内存储槽，用于开发环境和测试
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

// Load 读取存储槽
func (s *MemorySlotStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Save 整体覆盖写入存储槽
func (s *MemorySlotStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.slots[key] = v
	return nil
}
