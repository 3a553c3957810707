package llm

import (
	"Islet/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var chatPrompt string
var topicPrompt string
var extractPrompt string

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	chatPrompt = readPrompt(cfg.PromptsPath.Chat)
	topicPrompt = readPrompt(cfg.PromptsPath.Topic)
	extractPrompt = readPrompt(cfg.PromptsPath.Extract)

	return nil
}
