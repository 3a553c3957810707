package service

import (
	"Islet/internal/api/dto"
	"Islet/internal/pkg/llm"
	"Islet/internal/pkg/mongo"
	"Islet/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type AgentService interface {
	// Chat 运营助理对话，历史落在 Mongo，按 chat_id 续聊
	Chat(ctx context.Context, req *dto.ChatReq) (*dto.ChatResp, error)
	// SuggestTopics 结合近期笔记和站外热点生成选题
	SuggestTopics(ctx context.Context) (*dto.TopicResp, error)
	// ExtractStats 从后台数据截图提取周报数字
	ExtractStats(ctx context.Context, req *dto.ExtractReq) (*dto.ExtractResp, error)
}

type agentServiceImpl struct {
	chatRepo mongo.ChatMessageRepo
	noteRepo repository.NoteRepo
	tools    *llm.ToolHandler
}

func NewAgentService(chatRepo mongo.ChatMessageRepo, noteRepo repository.NoteRepo, tools *llm.ToolHandler) AgentService {
	return &agentServiceImpl{
		chatRepo: chatRepo,
		noteRepo: noteRepo,
		tools:    tools,
	}
}

func (s *agentServiceImpl) Chat(ctx context.Context, req *dto.ChatReq) (*dto.ChatResp, error) {
	chatID := req.ChatID
	if chatID == "" {
		chatID = uuid.NewString()
	}

	msgs, err := s.chatRepo.GetHistory(ctx, chatID, 20)
	if err != nil {
		log.WarnContext(ctx, "会话历史拉取失败，按新会话处理", "chat_id", chatID, "err", err)
		msgs = nil
	}

	history := make([]llm.Turn, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, llm.Turn{Role: m.Role, Content: m.Content})
	}

	text, err := llm.Chat(ctx, req.Message, history)
	if err != nil {
		log.ErrorContext(ctx, "AI对话失败", "err", err)
		return nil, ErrAgentUnavailable
	}

	// 历史落库失败不影响本轮回复
	if err := s.chatRepo.SaveMessage(ctx, &mongo.ChatMessage{ChatID: chatID, Role: "user", Content: req.Message}); err != nil {
		log.WarnContext(ctx, "会话消息入库失败", "err", err)
	}
	if err := s.chatRepo.SaveMessage(ctx, &mongo.ChatMessage{ChatID: chatID, Role: "assistant", Content: text}); err != nil {
		log.WarnContext(ctx, "会话消息入库失败", "err", err)
	}

	return &dto.ChatResp{ChatID: chatID, Text: text}, nil
}

func (s *agentServiceImpl) SuggestTopics(ctx context.Context) (*dto.TopicResp, error) {
	titles, err := s.noteRepo.ListRecentTitles(ctx, 20)
	if err != nil {
		log.WarnContext(ctx, "近期笔记标题查询失败", "err", err)
	}

	digest, err := s.tools.WebSearch(ctx, "小红书 猫咪 热门笔记 选题")
	if err != nil {
		log.WarnContext(ctx, "站外热点检索失败，仅用站内数据生成", "err", err)
		digest = ""
	}

	text, err := llm.SuggestTopics(ctx, titles, digest)
	if err != nil {
		log.ErrorContext(ctx, "选题生成失败", "err", err)
		return nil, ErrAgentUnavailable
	}
	return &dto.TopicResp{Text: text}, nil
}

func (s *agentServiceImpl) ExtractStats(ctx context.Context, req *dto.ExtractReq) (*dto.ExtractResp, error) {
	text, err := llm.ExtractStats(ctx, req.ImageURL)
	if err != nil {
		log.ErrorContext(ctx, "截图数据提取失败", "err", err)
		return nil, ErrAgentUnavailable
	}
	return &dto.ExtractResp{Text: text}, nil
}
