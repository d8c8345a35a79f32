package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("初始化 gorm 失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	Slots    SlotStore
	Favorite *FavoriteRepository
}

// NewRepositories 创建仓库集合，favoritesKey 为收藏夹所在的存储槽
func NewRepositories(slots SlotStore, favoritesKey string) *Repositories {
	return &Repositories{
		Slots:    slots,
		Favorite: NewFavoriteRepository(slots, favoritesKey),
	}
}
