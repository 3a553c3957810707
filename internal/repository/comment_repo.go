package repository

import (
	"Islet/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepo interface {
	// UpsertComment comment_id 冲突时整体覆盖，保证重复抓取不产生重复行
	UpsertComment(ctx context.Context, comment *model.NoteComment) error
	ListByNoteID(ctx context.Context, noteID string, limit int) ([]*model.NoteComment, error)
	CountComments(ctx context.Context) (int64, error)
	CountNotesWithComments(ctx context.Context) (int64, error)
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: db}
}

func (s *commentRepoImpl) UpsertComment(ctx context.Context, comment *model.NoteComment) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "comment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content",
			"nickname",
			"avatar_url",
			"like_count",
			"sub_comment_count",
			"ip_location",
			"published_at",
		}),
	}).Create(comment).Error
}

func (s *commentRepoImpl) ListByNoteID(ctx context.Context, noteID string, limit int) ([]*model.NoteComment, error) {
	comments := make([]*model.NoteComment, 0)
	query := s.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("like_count DESC, published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentRepoImpl) CountComments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.NoteComment{}).Count(&count).Error
	return count, err
}

func (s *commentRepoImpl) CountNotesWithComments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.NoteComment{}).
		Distinct("note_id").
		Count(&count).Error
	return count, err
}
