package service

import (
	"context"
	"log"
	"sync"

	"github.com/user/movie-explorer/internal/model"
)

// FavoritesRepository 收藏夹持久化
type FavoritesRepository interface {
	Load(ctx context.Context) ([]model.Movie, error)
	Save(ctx context.Context, movies []model.Movie) error
}

// FavoritesStore 收藏夹，内存列表与持久化存储槽在每次修改后保持一致
type FavoritesStore struct {
	repo   FavoritesRepository
	mu     sync.RWMutex
	movies []model.Movie
}

// NewFavoritesStore 从存储槽加载收藏夹，读取或解析失败时按空收藏夹处理
func NewFavoritesStore(ctx context.Context, repo FavoritesRepository) *FavoritesStore {
	movies, err := repo.Load(ctx)
	if err != nil {
		log.Printf("[Favorites] 读取收藏夹失败，按空收藏夹处理: %v", err)
		movies = nil
	}
	if movies == nil {
		movies = []model.Movie{}
	}
	return &FavoritesStore{repo: repo, movies: dedupe(movies)}
}

// List 当前收藏，按加入顺序
func (s *FavoritesStore) List() []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Movie{}, s.movies...)
}

// Count 收藏数量
func (s *FavoritesStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// IsFavorite 是否已收藏
func (s *FavoritesStore) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// Add 添加收藏，已存在时不重复添加
func (s *FavoritesStore) Add(ctx context.Context, movie model.Movie) error {
	if movie.ID == "" {
		return ErrInvalidMovie
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, movie)
}

// Remove 取消收藏，不存在时为空操作
func (s *FavoritesStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, id)
}

// Toggle 已收藏则取消，否则添加；返回操作后是否处于收藏状态
func (s *FavoritesStore) Toggle(ctx context.Context, movie model.Movie) (bool, error) {
	if movie.ID == "" {
		return false, ErrInvalidMovie
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(movie.ID) >= 0 {
		return false, s.remove(ctx, movie.ID)
	}
	if err := s.add(ctx, movie); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoritesStore) add(ctx context.Context, movie model.Movie) error {
	next := s.movies
	if s.indexOf(movie.ID) < 0 {
		next = make([]model.Movie, len(s.movies), len(s.movies)+1)
		copy(next, s.movies)
		next = append(next, movie)
	}
	return s.commit(ctx, next)
}

func (s *FavoritesStore) remove(ctx context.Context, id string) error {
	next := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if m.ID != id {
			next = append(next, m)
		}
	}
	return s.commit(ctx, next)
}

// commit 先写存储槽，成功后才替换内存列表
func (s *FavoritesStore) commit(ctx context.Context, next []model.Movie) error {
	if err := s.repo.Save(ctx, next); err != nil {
		log.Printf("[Favorites] 保存收藏夹失败: %v", err)
		return err
	}
	s.movies = next
	return nil
}

func (s *FavoritesStore) indexOf(id string) int {
	for i, m := range s.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// dedupe 去除重复 ID，保留首次出现的条目
func dedupe(movies []model.Movie) []model.Movie {
	seen := make(map[string]struct{}, len(movies))
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
