package repository

import (
	"Islet/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type AccountRepo interface {
	// InsertSnapshot 快照只追加不更新，历史用于还原趋势
	InsertSnapshot(ctx context.Context, snapshot *model.AccountSnapshot) error
	GetLatest(ctx context.Context) (*model.AccountSnapshot, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.AccountSnapshot, error)
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (s *accountRepoImpl) InsertSnapshot(ctx context.Context, snapshot *model.AccountSnapshot) error {
	return s.db.WithContext(ctx).Create(snapshot).Error
}

func (s *accountRepoImpl) GetLatest(ctx context.Context) (*model.AccountSnapshot, error) {
	var snapshot model.AccountSnapshot
	err := s.db.WithContext(ctx).
		Order("captured_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

func (s *accountRepoImpl) ListSince(ctx context.Context, since time.Time) ([]*model.AccountSnapshot, error) {
	snapshots := make([]*model.AccountSnapshot, 0)
	err := s.db.WithContext(ctx).
		Where("captured_at >= ?", since).
		Order("captured_at ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
