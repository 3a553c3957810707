package handler

import (
	"Islet/internal/pkg/response"
	"Islet/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteSvc service.NoteService
}

func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

func (s *NoteHandler) GetNoteList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := s.noteSvc.GetNoteList(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NoteHandler) GetNoteDetail(c *gin.Context) {
	noteID := c.Param("note_id")
	if noteID == "" {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}

	detail, err := s.noteSvc.GetNoteDetail(c.Request.Context(), noteID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}
