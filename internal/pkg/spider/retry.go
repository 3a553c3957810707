package spider

import (
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// CallWithRetry 按顺序尝试候选地址，每个地址最多 maxAttempts 次。
// 失败后线性退避（第 k 次失败等待 k*retryDelay）。终止类业务码（密钥失效、
// 余额不足、账号禁用）首次出现即放弃整个调用，不再消耗剩余次数和备用地址。
func (c *Client) CallWithRetry(ctx context.Context, endpoints []string, payload map[string]any, maxAttempts int) (json.RawMessage, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("没有可用的采集API地址")
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error

	for _, url := range endpoints {
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			data, err := c.Call(ctx, url, payload)
			if err == nil {
				return data, nil
			}

			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.Fatal() {
				return nil, err
			}

			lastErr = err
			if attempt < maxAttempts {
				log.WarnContext(ctx, "采集API调用失败，准备重试",
					"url", url, "attempt", attempt, "err", err)
				if serr := sleepCtx(ctx, time.Duration(attempt)*c.retryDelay); serr != nil {
					return nil, serr
				}
			}
		}
	}

	return nil, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
