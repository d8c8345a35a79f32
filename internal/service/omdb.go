package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/user/movie-explorer/internal/model"
	"golang.org/x/sync/singleflight"
)

// DefaultOMDbBaseURL OMDb 接口地址
const DefaultOMDbBaseURL = "https://www.omdbapi.com/"

// MovieAPI 电影数据提供方
type MovieAPI interface {
	Search(ctx context.Context, query string, page int) (*model.SearchPage, error)
	GetDetails(ctx context.Context, id string) (*model.MovieDetails, error)
}

// OMDbClient OMDb 客户端
type OMDbClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	group      singleflight.Group
}

// NewOMDbClient 创建 OMDb 客户端，未配置 API Key 时返回 ErrMissingCredential
func NewOMDbClient(apiKey, baseURL string) (*OMDbClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if baseURL == "" {
		baseURL = DefaultOMDbBaseURL
	}
	return &OMDbClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

type omdbSearchResponse struct {
	Search       []model.Movie `json:"Search"`
	TotalResults string        `json:"totalResults"`
	Response     string        `json:"Response"`
	Error        string        `json:"Error"`
}

type omdbDetailsResponse struct {
	model.MovieDetails
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Search 按关键词分页搜索
func (c *OMDbClient) Search(ctx context.Context, query string, page int) (*model.SearchPage, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	var resp omdbSearchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	switch resp.Response {
	case "True":
	case "False":
		return nil, providerError(resp.Error, KindNoResults)
	default:
		return nil, newSearchError(KindTransport, "", fmt.Errorf("unexpected Response field %q", resp.Response))
	}

	items := resp.Search
	if items == nil {
		items = []model.Movie{}
	}
	return &model.SearchPage{
		Query:      query,
		Page:       page,
		Items:      items,
		TotalCount: ParseTotalResults(resp.TotalResults),
	}, nil
}

// GetDetails 获取电影详情，同一 ID 的并发请求合并为一次
func (c *OMDbClient) GetDetails(ctx context.Context, id string) (*model.MovieDetails, error) {
	// 合并后的请求不随单个调用方取消，调用方只停止等待
	ch := c.group.DoChan(id, func() (interface{}, error) {
		return c.fetchDetails(context.WithoutCancel(ctx), id)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		details := *res.Val.(*model.MovieDetails)
		return &details, nil
	case <-ctx.Done():
		return nil, newSearchError(KindTransport, "", ctx.Err())
	}
}

func (c *OMDbClient) fetchDetails(ctx context.Context, id string) (*model.MovieDetails, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")

	var resp omdbDetailsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	switch resp.Response {
	case "True":
	case "False":
		return nil, providerError(resp.Error, KindNotFound)
	default:
		return nil, newSearchError(KindTransport, "", fmt.Errorf("unexpected Response field %q", resp.Response))
	}

	return &resp.MovieDetails, nil
}

func (c *OMDbClient) get(ctx context.Context, params url.Values, target interface{}) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return newSearchError(KindTransport, "", fmt.Errorf("创建请求失败: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newSearchError(KindTransport, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		var body struct {
			Error string `json:"Error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return newSearchError(KindInvalidCredential, body.Error, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return newSearchError(KindTransport, "", fmt.Errorf("请求失败，状态码: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Printf("[OMDb] 解析JSON失败: %v", err)
		return newSearchError(KindTransport, "", fmt.Errorf("解析JSON失败: %w", err))
	}
	return nil
}

// providerError 将提供方返回的 Error 字段映射为 SearchError
func providerError(message string, kind ErrorKind) *SearchError {
	if strings.Contains(strings.ToLower(message), "api key") {
		return newSearchError(KindInvalidCredential, message, nil)
	}
	return newSearchError(kind, message, nil)
}

// ParseTotalResults 解析 totalResults，无法解析时返回 0
func ParseTotalResults(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
