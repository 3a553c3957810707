package dto

import "time"

// NoteDTO 笔记列表项
type NoteDTO struct {
	NoteID        string     `json:"note_id"`
	Title         string     `json:"title"`
	CoverURL      string     `json:"cover_url"`
	NoteType      string     `json:"note_type"`
	LikesCount    int        `json:"likes_count"`
	CollectsCount int        `json:"collects_count"`
	CommentsCount int        `json:"comments_count"`
	SharesCount   int        `json:"shares_count"`
	PublishedAt   *time.Time `json:"published_at"`
	LastSyncAt    time.Time  `json:"last_sync_at"`
}

// NoteDetailDTO 笔记详情，附带评论
type NoteDetailDTO struct {
	NoteDTO
	Description string        `json:"description"`
	IPLocation  string        `json:"ip_location"`
	Comments    []*CommentDTO `json:"comments"`
}

// NoteListDTO 笔记列表响应
type NoteListDTO struct {
	Notes []*NoteDTO `json:"notes"`
	Total int64      `json:"total"`
}

// CommentDTO 评论明细
type CommentDTO struct {
	CommentID       string     `json:"comment_id"`
	UserID          string     `json:"user_id"`
	Nickname        string     `json:"nickname"`
	AvatarURL       string     `json:"avatar_url"`
	Content         string     `json:"content"`
	LikeCount       int        `json:"like_count"`
	SubCommentCount int        `json:"sub_comment_count"`
	IPLocation      string     `json:"ip_location"`
	PublishedAt     *time.Time `json:"published_at"`
}
