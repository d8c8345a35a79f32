package model

import (
	"strings"
)

// PosterNA 提供方用于表示"无海报"的哨兵值
const PosterNA = "N/A"

// Movie 电影摘要（OMDb 搜索结果条目，也是收藏夹的存储单元）
type Movie struct {
	ID     string `json:"imdbID" binding:"required"`
	Title  string `json:"Title" binding:"required"`
	Year   string `json:"Year"` // 可能是区间，如 "2008–2013"
	Type   string `json:"Type"` // movie / series / episode
	Poster string `json:"Poster"`
}

// HasPoster 是否有可用海报
func (m Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != PosterNA
}

// Rating 第三方评分
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// MovieDetails 电影详情，字段名与 OMDb 详情接口保持一致
type MovieDetails struct {
	Movie
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"` // 逗号分隔
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Language   string   `json:"Language"`
	Country    string   `json:"Country"`
	Awards     string   `json:"Awards"`
	Metascore  string   `json:"Metascore"`  // 可能为 "N/A"
	IMDbRating string   `json:"imdbRating"` // 可能为 "N/A"
	IMDbVotes  string   `json:"imdbVotes"`
	Ratings    []Rating `json:"Ratings"`
}

// Genres 拆分类型列表
func (d MovieDetails) Genres() []string {
	return splitList(d.Genre)
}

// Cast 拆分演员列表
func (d MovieDetails) Cast() []string {
	return splitList(d.Actors)
}

func splitList(s string) []string {
	if s == "" || s == PosterNA {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
