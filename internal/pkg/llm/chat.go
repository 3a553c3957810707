package llm

import (
	"Islet/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Turn 一轮历史对话
type Turn struct {
	Role    string // user / assistant
	Content string
}

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// Chat 运营助理对话。上游故障直接返回错误，不做重试。
func Chat(ctx context.Context, question string, history []Turn) (string, error) {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(chatPrompt)},
	})

	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(turn.Content)},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(question)},
	})

	resp, err := fetchModel(ctx, messages, 0.7)
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

// SuggestTopics 基于近期笔记标题和站外热点生成选题建议
func SuggestTopics(ctx context.Context, recentTitles []string, webDigest string) (string, error) {
	var builder strings.Builder
	builder.WriteString("最近发布的笔记标题：\n")
	for i, title := range recentTitles {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
	}
	if webDigest != "" {
		builder.WriteString("\n站外热点摘要：\n")
		builder.WriteString(webDigest)
	}

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(topicPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(builder.String())},
		},
	}

	resp, err := fetchModel(ctx, messages, 0.9)
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

// ExtractStats 用视觉模型从后台数据截图里抽取周报数字
func ExtractStats(ctx context.Context, imageURL string) (string, error) {
	if err := ImageSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer ImageSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(extractPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.ImageURLPart(imageURL)},
		},
	}

	log.Info("正在请求AI大模型")
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.VisionModel),
		llms.WithTemperature(0.1),
	)
	if err != nil {
		return "", err
	}
	return firstChoice(resp), nil
}

func fetchModel(ctx context.Context, messages []llms.MessageContent, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	log.Info("正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}

func firstChoice(resp *llms.ContentResponse) string {
	if resp != nil && len(resp.Choices) > 0 {
		return resp.Choices[0].Content
	}
	return ""
}
