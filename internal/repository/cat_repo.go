package repository

import (
	"Islet/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CatRepo interface {
	Create(ctx context.Context, cat *model.Cat) error
	Update(ctx context.Context, cat *model.Cat) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*model.Cat, error)
	List(ctx context.Context) ([]*model.Cat, error)
}

type catRepoImpl struct {
	db *gorm.DB
}

func NewCatRepo(db *gorm.DB) CatRepo {
	return &catRepoImpl{db: db}
}

func (s *catRepoImpl) Create(ctx context.Context, cat *model.Cat) error {
	return s.db.WithContext(ctx).Create(cat).Error
}

func (s *catRepoImpl) Update(ctx context.Context, cat *model.Cat) error {
	return s.db.WithContext(ctx).Updates(cat).Error
}

func (s *catRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Cat{}, id).Error
}

func (s *catRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Cat, error) {
	var cat model.Cat
	err := s.db.WithContext(ctx).First(&cat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *catRepoImpl) List(ctx context.Context) ([]*model.Cat, error) {
	cats := make([]*model.Cat, 0)
	err := s.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}
