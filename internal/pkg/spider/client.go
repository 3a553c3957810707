package spider

import (
	"Islet/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// 采集API的接口路径
const (
	EndpointUserInfo     = "/api/xhs/user_info"
	EndpointUserNotes    = "/api/xhs/user_notes"
	EndpointNoteDetail   = "/api/xhs/note_detail"
	EndpointNoteComments = "/api/xhs/note_comments"
)

// codeReasons 非200业务码到可读原因的静态映射
var codeReasons = map[int]string{
	401: "密钥无效或已过期",
	301: "账户余额不足",
	403: "账号已被禁用",
	404: "接口不存在",
}

// fatalCodes 重试无法恢复的业务码，遇到即整体终止
var fatalCodes = map[int]struct{}{
	401: {},
	403: {},
	301: {},
}

// Error 上游返回的非200业务错误
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Fatal 判断是否属于重试无意义的终止类错误
func (e *Error) Fatal() bool {
	_, ok := fatalCodes[e.Code]
	return ok
}

// newError 按映射表生成错误，未知码回落到原始message
func newError(code int, message string) *Error {
	reason, ok := codeReasons[code]
	if !ok {
		if message != "" {
			reason = message
		} else {
			reason = fmt.Sprintf("error: %d", code)
		}
	}
	return &Error{Code: code, Message: reason}
}

// envelope 上游统一响应包装
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Fetcher 对外暴露的采集客户端能力，便于在批处理中替换为桩实现
type Fetcher interface {
	CallWithRetry(ctx context.Context, endpoints []string, payload map[string]any, maxAttempts int) (json.RawMessage, error)
	Endpoints(path string) []string
}

type Client struct {
	http       *resty.Client
	baseURLs   []string
	retryDelay time.Duration
}

func NewClient(cfg config.SpiderConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.Token)

	baseURLs := []string{cfg.BaseURL}
	if cfg.BackupURL != "" {
		baseURLs = append(baseURLs, cfg.BackupURL)
	}

	retryDelay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = 300 * time.Millisecond
	}

	return &Client{
		http:       client,
		baseURLs:   baseURLs,
		retryDelay: retryDelay,
	}
}

// Endpoints 返回某接口路径的候选完整地址，主站优先，备用站兜底
func (c *Client) Endpoints(path string) []string {
	urls := make([]string, 0, len(c.baseURLs))
	for _, base := range c.baseURLs {
		urls = append(urls, base+path)
	}
	return urls
}

// Call 单次调用：附带鉴权、解析响应包装，仅 code==200 视为成功
func (c *Client) Call(ctx context.Context, url string, payload map[string]any) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, errors.Wrap(err, "采集API请求失败")
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, errors.Wrapf(err, "采集API响应解析失败: http %d", resp.StatusCode())
	}

	if env.Code != 200 {
		apiErr := newError(env.Code, env.Message)
		log.WarnContext(ctx, "采集API返回业务错误", "url", url, "code", env.Code, "reason", apiErr.Message)
		return nil, apiErr
	}

	return env.Data, nil
}
