package handler

import (
	"Islet/internal/pkg/response"
	"Islet/internal/service"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncSvc service.SyncService
}

func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// TriggerNoteSync 触发一次有时间预算的详情同步，部分完成也返回成功计数
func (s *SyncHandler) TriggerNoteSync(c *gin.Context) {
	result, err := s.syncSvc.SyncNoteDetails(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// TriggerAccountSync 触发账号快照与笔记列表刷新
func (s *SyncHandler) TriggerAccountSync(c *gin.Context) {
	result, err := s.syncSvc.SyncAccount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetStatus 只读聚合概览，不触发任何抓取
func (s *SyncHandler) GetStatus(c *gin.Context) {
	status, err := s.syncSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}
