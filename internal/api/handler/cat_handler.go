package handler

import (
	"Islet/internal/api/dto"
	"Islet/internal/pkg/response"
	"Islet/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CatHandler struct {
	catSvc service.CatService
}

func NewCatHandler(catSvc service.CatService) *CatHandler {
	return &CatHandler{catSvc: catSvc}
}

func (s *CatHandler) GetCats(c *gin.Context) {
	cats, err := s.catSvc.GetCats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cats)
}

func (s *CatHandler) CreateCat(c *gin.Context) {
	var req dto.CreateCatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	cat, err := s.catSvc.CreateCat(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cat)
}

func (s *CatHandler) UpdateCat(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("cat_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}

	var req dto.UpdateCatDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.catSvc.UpdateCat(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CatHandler) DeleteCat(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("cat_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}

	if err := s.catSvc.DeleteCat(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
