package model

import (
	"time"
)

// SearchPage 一次 (关键词, 页码) 搜索的结果
type SearchPage struct {
	Query      string  `json:"query"`
	Page       int     `json:"page"`
	Items      []Movie `json:"items"`
	TotalCount int     `json:"total_count"`
}

// StorageSlot 持久化键值槽
type StorageSlot struct {
	Key       string    `json:"key" gorm:"column:slot_key;primaryKey"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 表名
func (StorageSlot) TableName() string {
	return "storage_slots"
}
