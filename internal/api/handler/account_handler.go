package handler

import (
	"Islet/internal/pkg/response"
	"Islet/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (s *AccountHandler) GetLatest(c *gin.Context) {
	snapshot, err := s.accountSvc.GetLatestSnapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshot)
}

func (s *AccountHandler) GetHistory(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	trend, err := s.accountSvc.GetHistory(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
