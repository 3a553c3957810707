package handler

import (
	"Islet/internal/api/dto"
	"Islet/internal/pkg/response"
	"Islet/internal/service"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	agentSvc service.AgentService
}

func NewAgentHandler(agentSvc service.AgentService) *AgentHandler {
	return &AgentHandler{agentSvc: agentSvc}
}

func (s *AgentHandler) Chat(c *gin.Context) {
	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.agentSvc.Chat(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *AgentHandler) SuggestTopics(c *gin.Context) {
	resp, err := s.agentSvc.SuggestTopics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

func (s *AgentHandler) ExtractStats(c *gin.Context) {
	var req dto.ExtractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := s.agentSvc.ExtractStats(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}
