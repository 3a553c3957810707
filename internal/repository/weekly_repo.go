package repository

import (
	"Islet/internal/model"
	"context"

	"gorm.io/gorm"
)

type WeeklyRepo interface {
	Insert(ctx context.Context, stat *model.WeeklyStat) error
	ExistsByRange(ctx context.Context, dateRange string) (bool, error)
	List(ctx context.Context) ([]*model.WeeklyStat, error)
}

type weeklyRepoImpl struct {
	db *gorm.DB
}

func NewWeeklyRepo(db *gorm.DB) WeeklyRepo {
	return &weeklyRepoImpl{db: db}
}

func (s *weeklyRepoImpl) Insert(ctx context.Context, stat *model.WeeklyStat) error {
	return s.db.WithContext(ctx).Create(stat).Error
}

func (s *weeklyRepoImpl) ExistsByRange(ctx context.Context, dateRange string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.WeeklyStat{}).
		Where("date_range = ?", dateRange).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *weeklyRepoImpl) List(ctx context.Context) ([]*model.WeeklyStat, error) {
	stats := make([]*model.WeeklyStat, 0)
	err := s.db.WithContext(ctx).
		Order("date_range DESC").
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
