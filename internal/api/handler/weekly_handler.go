package handler

import (
	"Islet/internal/api/dto"
	"Islet/internal/pkg/response"
	"Islet/internal/service"

	"github.com/gin-gonic/gin"
)

type WeeklyHandler struct {
	weeklySvc service.WeeklyService
}

func NewWeeklyHandler(weeklySvc service.WeeklyService) *WeeklyHandler {
	return &WeeklyHandler{weeklySvc: weeklySvc}
}

func (s *WeeklyHandler) CreateWeeklyStat(c *gin.Context) {
	var req dto.CreateWeeklyStatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.weeklySvc.CreateWeeklyStat(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *WeeklyHandler) GetWeeklyStats(c *gin.Context) {
	stats, err := s.weeklySvc.GetWeeklyStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
