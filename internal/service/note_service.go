package service

import (
	"Islet/internal/api/dto"
	"Islet/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type NoteService interface {
	GetNoteList(ctx context.Context, page, pageSize int) (*dto.NoteListDTO, error)
	GetNoteDetail(ctx context.Context, noteID string) (*dto.NoteDetailDTO, error)
}

type noteServiceImpl struct {
	noteRepo    repository.NoteRepo
	commentRepo repository.CommentRepo
}

func NewNoteService(noteRepo repository.NoteRepo, commentRepo repository.CommentRepo) NoteService {
	return &noteServiceImpl{
		noteRepo:    noteRepo,
		commentRepo: commentRepo,
	}
}

func (s *noteServiceImpl) GetNoteList(ctx context.Context, page, pageSize int) (*dto.NoteListDTO, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	notes, total, err := s.noteRepo.ListNotes(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.NoteDTO, 0, len(notes))
	if err := copier.Copy(&list, &notes); err != nil {
		return nil, err
	}

	return &dto.NoteListDTO{Notes: list, Total: total}, nil
}

func (s *noteServiceImpl) GetNoteDetail(ctx context.Context, noteID string) (*dto.NoteDetailDTO, error) {
	note, err := s.noteRepo.GetByNoteID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	var detail dto.NoteDetailDTO
	if err := copier.Copy(&detail, note); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByNoteID(ctx, noteID, 0)
	if err != nil {
		return nil, err
	}
	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	if err := copier.Copy(&commentDTOs, &comments); err != nil {
		return nil, err
	}
	detail.Comments = commentDTOs

	return &detail, nil
}
