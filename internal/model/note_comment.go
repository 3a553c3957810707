package model

import (
	"time"
)

// NoteComment 笔记评论，comment_id 为全局唯一的自然主键，重复抓取按冲突覆盖
type NoteComment struct {
	ID              uint64     `gorm:"primaryKey"`
	CommentID       string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_comment_id" json:"comment_id"`
	NoteID          string     `gorm:"type:varchar(64);not null;index:idx_comment_note" json:"note_id"`
	UserID          string     `gorm:"type:varchar(64)" json:"user_id"`
	Nickname        string     `gorm:"type:varchar(100)" json:"nickname"`
	AvatarURL       string     `gorm:"type:varchar(500)" json:"avatar_url"`
	Content         string     `gorm:"type:varchar(1000)" json:"content"`
	LikeCount       int        `gorm:"not null;default:0" json:"like_count"`
	SubCommentCount int        `gorm:"not null;default:0" json:"sub_comment_count"`
	IPLocation      string     `gorm:"type:varchar(50)" json:"ip_location"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (NoteComment) TableName() string {
	return "note_comments"
}
