package llm

import (
	"context"
	"fmt"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// ToolHandler 站外信息检索工具，供选题生成引用热点
type ToolHandler struct {
	httpClient *resty.Client
}

func NewToolHandler() *ToolHandler {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", ua)

	return &ToolHandler{
		httpClient: client,
	}
}

// WebSearch 抓取搜索结果页前5条，拼成摘要文本
func (s *ToolHandler) WebSearch(ctx context.Context, query string) (string, error) {
	formData := url.Values{}
	formData.Set("q", query)

	resp, err := s.httpClient.R().SetContext(ctx).SetFormDataFromValues(formData).Post("https://html.duckduckgo.com/html")
	if err != nil {
		log.ErrorContext(ctx, "WebSearch", "error", err)
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	realIdx := 1
	doc.Find(".result").Each(func(i int, sel *goquery.Selection) {
		if realIdx > 5 {
			return
		}
		anchor := sel.Find(".result__title a")
		link, _ := anchor.Attr("href")
		if strings.Contains(link, "y.js") || strings.Contains(link, "ad_provider") {
			return
		}
		title := strings.TrimSpace(anchor.Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").Text())
		builder.WriteString(fmt.Sprintf("[%d] 标题: %s\n摘要: %s\n\n", realIdx, title, snippet))
		realIdx++
	})

	log.InfoContext(ctx, "WebSearch", "query", query, "results", realIdx-1)
	return builder.String(), nil
}
