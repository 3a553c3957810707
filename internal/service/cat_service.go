package service

import (
	"Islet/internal/api/dto"
	"Islet/internal/model"
	"Islet/internal/pkg/consts"
	"Islet/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type CatService interface {
	CreateCat(ctx context.Context, req *dto.CreateCatDTO) (*dto.CatDTO, error)
	UpdateCat(ctx context.Context, id uint64, req *dto.UpdateCatDTO) error
	DeleteCat(ctx context.Context, id uint64) error
	GetCats(ctx context.Context) ([]*dto.CatDTO, error)
}

type catServiceImpl struct {
	catRepo repository.CatRepo
}

func NewCatService(catRepo repository.CatRepo) CatService {
	return &catServiceImpl{catRepo: catRepo}
}

func (s *catServiceImpl) CreateCat(ctx context.Context, req *dto.CreateCatDTO) (*dto.CatDTO, error) {
	cat := &model.Cat{
		Name:        req.Name,
		Persona:     req.Persona,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		SortOrder:   req.SortOrder,
	}
	if cat.AvatarURL == "" {
		cat.AvatarURL = consts.DefaultCatAvatarURL
	}

	if err := s.catRepo.Create(ctx, cat); err != nil {
		return nil, err
	}

	var result dto.CatDTO
	if err := copier.Copy(&result, cat); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *catServiceImpl) UpdateCat(ctx context.Context, id uint64, req *dto.UpdateCatDTO) error {
	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCatNotFound
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Persona != nil {
		cat.Persona = *req.Persona
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.AvatarURL != nil {
		cat.AvatarURL = *req.AvatarURL
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}

	return s.catRepo.Update(ctx, cat)
}

func (s *catServiceImpl) DeleteCat(ctx context.Context, id uint64) error {
	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCatNotFound
	}
	return s.catRepo.Delete(ctx, id)
}

func (s *catServiceImpl) GetCats(ctx context.Context) ([]*dto.CatDTO, error) {
	cats, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.CatDTO, 0, len(cats))
	if err := copier.Copy(&list, &cats); err != nil {
		return nil, err
	}
	return list, nil
}
