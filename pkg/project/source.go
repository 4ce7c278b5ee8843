package project

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/decker502/folio/pkg/embedded"
)

// Source 项目数据源
type Source interface {
	// Load 读取完整的项目数据（JSON）
	Load(ctx context.Context) ([]byte, error)
	// String 返回数据源描述（用于日志）
	String() string
}

// NewSource 根据位置创建数据源
//   - 空字符串：嵌入的默认数据
//   - http:// 或 https:// 开头：HTTP 数据源
//   - 其他：本地文件
func NewSource(location string) Source {
	switch {
	case location == "":
		return EmbeddedSource{Path: DefaultDataPath}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPSource{URL: location}
	default:
		return FileSource{Path: location}
	}
}

// EmbeddedSource 从嵌入资源读取
type EmbeddedSource struct {
	Path string
}

// Load 读取嵌入资源
func (s EmbeddedSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := embedded.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return data, nil
}

func (s EmbeddedSource) String() string { return "embedded:" + s.Path }

// FileSource 从本地文件读取
type FileSource struct {
	Path string
}

// Load 读取本地文件
func (s FileSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return data, nil
}

func (s FileSource) String() string { return "file:" + s.Path }

// HTTPSource 通过 HTTP GET 读取
type HTTPSource struct {
	URL    string
	Client *http.Client // 为 nil 时使用 http.DefaultClient
}

// StatusError 非 2xx 响应
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Failed to load data: %d", e.Code)
}

// Load 发起请求并读取响应体；非 2xx 状态返回 *StatusError
func (s *HTTPSource) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

func (s *HTTPSource) String() string { return s.URL }
