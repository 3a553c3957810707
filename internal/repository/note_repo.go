package repository

import (
	"Islet/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepo interface {
	// UpsertFromList 列表同步：冲突时只刷新列表页能看到的字段，不碰详情和同步时间
	UpsertFromList(ctx context.Context, note *model.Note) error
	// UpsertDetail 详情同步：冲突时刷新计数、详情与同步时间
	UpsertDetail(ctx context.Context, note *model.Note) error
	// TouchSyncTime 仅推进新旧标记，失败的任务也要让队列前移
	TouchSyncTime(ctx context.Context, noteID string, t time.Time) error
	// ListStalest 取最久未同步的一批笔记
	ListStalest(ctx context.Context, limit int) ([]*model.Note, error)
	GetByNoteID(ctx context.Context, noteID string) (*model.Note, error)
	ListNotes(ctx context.Context, page, pageSize int) ([]*model.Note, int64, error)
	ListRecentTitles(ctx context.Context, limit int) ([]string, error)
	CountNotes(ctx context.Context) (int64, error)
}

type noteRepoImpl struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) NoteRepo {
	return &noteRepoImpl{db: db}
}

func (s *noteRepoImpl) UpsertFromList(ctx context.Context, note *model.Note) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "note_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"cover_url",
			"note_type",
			"likes_count",
			"collects_count",
			"comments_count",
			"shares_count",
			"published_at",
			"updated_at",
		}),
	}).Create(note).Error
}

func (s *noteRepoImpl) UpsertDetail(ctx context.Context, note *model.Note) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "note_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title",
			"cover_url",
			"note_type",
			"likes_count",
			"collects_count",
			"comments_count",
			"shares_count",
			"description",
			"ip_location",
			"detail",
			"published_at",
			"last_sync_at",
			"updated_at",
		}),
	}).Create(note).Error
}

func (s *noteRepoImpl) TouchSyncTime(ctx context.Context, noteID string, t time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Note{}).
		Where("note_id = ?", noteID).
		Update("last_sync_at", t).Error
}

func (s *noteRepoImpl) ListStalest(ctx context.Context, limit int) ([]*model.Note, error) {
	notes := make([]*model.Note, 0, limit)
	err := s.db.WithContext(ctx).
		Order("last_sync_at ASC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *noteRepoImpl) GetByNoteID(ctx context.Context, noteID string) (*model.Note, error) {
	var note model.Note
	err := s.db.WithContext(ctx).Where("note_id = ?", noteID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (s *noteRepoImpl) ListNotes(ctx context.Context, page, pageSize int) ([]*model.Note, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Note{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notes := make([]*model.Note, 0, pageSize)
	err := s.db.WithContext(ctx).
		Order("published_at DESC NULLS LAST").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (s *noteRepoImpl) ListRecentTitles(ctx context.Context, limit int) ([]string, error) {
	titles := make([]string, 0, limit)
	err := s.db.WithContext(ctx).Model(&model.Note{}).
		Where("title <> ''").
		Order("published_at DESC NULLS LAST").
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (s *noteRepoImpl) CountNotes(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error
	return count, err
}
