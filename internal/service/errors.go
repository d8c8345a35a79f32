package service

import (
	"errors"
)

// ErrorKind 搜索错误分类
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindMissingCredential
	KindInvalidCredential
	KindNoResults
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindNoResults:
		return "no_results"
	case KindNotFound:
		return "not_found"
	default:
		return "transport"
	}
}

// SearchError 搜索/详情请求的统一错误
type SearchError struct {
	Kind    ErrorKind
	Message string // 面向用户的提示
	Err     error  // 底层错误，可为空
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is 按错误分类匹配，便于 errors.Is(err, ErrNoResults)
func (e *SearchError) Is(target error) bool {
	t, ok := target.(*SearchError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingCredential = &SearchError{Kind: KindMissingCredential, Message: "未配置 OMDb API Key"}
	ErrInvalidCredential = &SearchError{Kind: KindInvalidCredential, Message: "OMDb API Key 无效"}
	ErrNoResults         = &SearchError{Kind: KindNoResults, Message: "未找到相关电影"}
	ErrNotFound          = &SearchError{Kind: KindNotFound, Message: "未找到该电影"}
	ErrTransport         = &SearchError{Kind: KindTransport, Message: "获取电影数据失败，请稍后重试"}
)

func newSearchError(kind ErrorKind, message string, err error) *SearchError {
	if message == "" {
		switch kind {
		case KindMissingCredential:
			message = ErrMissingCredential.Message
		case KindInvalidCredential:
			message = ErrInvalidCredential.Message
		case KindNoResults:
			message = ErrNoResults.Message
		case KindNotFound:
			message = ErrNotFound.Message
		default:
			message = ErrTransport.Message
		}
	}
	return &SearchError{Kind: kind, Message: message, Err: err}
}

// 搜索流程错误
var (
	ErrEmptyQuery        = errors.New("搜索关键词不能为空")
	ErrInvalidPage       = errors.New("页码必须大于等于 1")
	ErrInvalidTransition = errors.New("当前状态不允许该操作")
	ErrStaleRequest      = errors.New("请求已被更新的请求取代")
	ErrInvalidMovie      = errors.New("电影缺少 imdbID")
)
