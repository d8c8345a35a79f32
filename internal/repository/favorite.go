package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/movie-explorer/internal/model"
)

// DefaultFavoritesKey 收藏夹默认存储槽
const DefaultFavoritesKey = "movieExplorerFavorites"

// FavoriteRepository 收藏夹持久化，收藏列表整体编码为 JSON 数组存放在一个存储槽中
type FavoriteRepository struct {
	store SlotStore
	key   string
}

func NewFavoriteRepository(store SlotStore, key string) *FavoriteRepository {
	if key == "" {
		key = DefaultFavoritesKey
	}
	return &FavoriteRepository{store: store, key: key}
}

// Key 存储槽名称
func (r *FavoriteRepository) Key() string {
	return r.key
}

// Load 读取收藏列表，存储槽不存在时返回空列表
func (r *FavoriteRepository) Load(ctx context.Context) ([]model.Movie, error) {
	raw, err := r.store.Load(ctx, r.key)
	if errors.Is(err, ErrSlotNotFound) {
		return []model.Movie{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取存储槽 %s 失败: %w", r.key, err)
	}
	return DecodeMovies(raw)
}

// Save 覆盖写入收藏列表
func (r *FavoriteRepository) Save(ctx context.Context, movies []model.Movie) error {
	raw, err := EncodeMovies(movies)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, r.key, raw); err != nil {
		return fmt.Errorf("写入存储槽 %s 失败: %w", r.key, err)
	}
	return nil
}

// EncodeMovies 编码为 JSON 数组，nil 编码为 []
func EncodeMovies(movies []model.Movie) ([]byte, error) {
	if movies == nil {
		movies = []model.Movie{}
	}
	raw, err := json.Marshal(movies)
	if err != nil {
		return nil, fmt.Errorf("编码收藏列表失败: %w", err)
	}
	return raw, nil
}

// DecodeMovies 解码 JSON 数组，空值视为空列表
func DecodeMovies(raw []byte) ([]model.Movie, error) {
	movies := []model.Movie{}
	if len(raw) == 0 {
		return movies, nil
	}
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("解析收藏列表失败: %w", err)
	}
	if movies == nil {
		// 存储值为 "null"
		movies = []model.Movie{}
	}
	return movies, nil
}
