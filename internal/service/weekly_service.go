package service

import (
	"Islet/internal/api/dto"
	"Islet/internal/model"
	"Islet/internal/repository"
	"context"
	"strings"

	"github.com/jinzhu/copier"
)

type WeeklyService interface {
	CreateWeeklyStat(ctx context.Context, req *dto.CreateWeeklyStatDTO) error
	GetWeeklyStats(ctx context.Context) ([]*dto.WeeklyStatDTO, error)
}

type weeklyServiceImpl struct {
	weeklyRepo repository.WeeklyRepo
}

func NewWeeklyService(weeklyRepo repository.WeeklyRepo) WeeklyService {
	return &weeklyServiceImpl{weeklyRepo: weeklyRepo}
}

func (s *weeklyServiceImpl) CreateWeeklyStat(ctx context.Context, req *dto.CreateWeeklyStatDTO) error {
	dateRange := strings.TrimSpace(req.DateRange)
	if dateRange == "" {
		return ErrParamInvalid
	}

	exists, err := s.weeklyRepo.ExistsByRange(ctx, dateRange)
	if err != nil {
		return err
	}
	if exists {
		return ErrWeeklyRangeExist
	}

	stat := &model.WeeklyStat{
		DateRange:    dateRange,
		NewFollowers: req.NewFollowers,
		Likes:        req.Likes,
		Collects:     req.Collects,
		Comments:     req.Comments,
		Views:        req.Views,
		FemaleRatio:  req.FemaleRatio,
	}
	return s.weeklyRepo.Insert(ctx, stat)
}

func (s *weeklyServiceImpl) GetWeeklyStats(ctx context.Context) ([]*dto.WeeklyStatDTO, error) {
	stats, err := s.weeklyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.WeeklyStatDTO, 0, len(stats))
	if err := copier.Copy(&list, &stats); err != nil {
		return nil, err
	}
	return list, nil
}
