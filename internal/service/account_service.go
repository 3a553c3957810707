package service

import (
	"Islet/internal/api/dto"
	"Islet/internal/pkg/consts"
	"Islet/internal/pkg/redis"
	"Islet/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type AccountService interface {
	GetLatestSnapshot(ctx context.Context) (*dto.AccountSnapshotDTO, error)
	GetHistory(ctx context.Context, days int) (*dto.AccountTrendDTO, error)
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &accountServiceImpl{accountRepo: accountRepo}
}

func (s *accountServiceImpl) GetLatestSnapshot(ctx context.Context) (*dto.AccountSnapshotDTO, error) {
	if val, err := redis.GetValue(ctx, consts.AccountLatestKey); err == nil && val != "" {
		var cached dto.AccountSnapshotDTO
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &cached, nil
		}
	}

	snapshot, err := s.accountRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	var result dto.AccountSnapshotDTO
	if err := copier.Copy(&result, snapshot); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(&result); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.AccountLatestKey, string(data), 5*time.Minute)
	}
	return &result, nil
}

func (s *accountServiceImpl) GetHistory(ctx context.Context, days int) (*dto.AccountTrendDTO, error) {
	if days <= 0 || days > 365 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days)
	snapshots, err := s.accountRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.AccountSnapshotDTO, 0, len(snapshots))
	if err := copier.Copy(&list, &snapshots); err != nil {
		return nil, err
	}

	return &dto.AccountTrendDTO{Days: days, Snapshots: list}, nil
}
