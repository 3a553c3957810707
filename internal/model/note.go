package model

import (
	"time"

	"github.com/goccy/go-json"
)

// Note 一篇笔记，note_id 为平台分配的自然主键，重复同步只刷新计数不产生新行
type Note struct {
	ID            uint64          `gorm:"primaryKey"`
	NoteID        string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_note_id" json:"note_id"`
	Title         string          `gorm:"type:varchar(200)" json:"title"`
	CoverURL      string          `gorm:"type:varchar(500)" json:"cover_url"`
	NoteType      string          `gorm:"type:varchar(20);not null;default:normal" json:"note_type"` // normal:图文, video:视频
	LikesCount    int             `gorm:"not null;default:0" json:"likes_count"`
	CollectsCount int             `gorm:"not null;default:0" json:"collects_count"`
	CommentsCount int             `gorm:"not null;default:0" json:"comments_count"`
	SharesCount   int             `gorm:"not null;default:0" json:"shares_count"`
	Description   string          `gorm:"type:text" json:"description"`
	IPLocation    string          `gorm:"type:varchar(50)" json:"ip_location"`
	Detail        json.RawMessage `gorm:"type:jsonb" json:"detail,omitempty"` // 上游原始详情，原样保留
	PublishedAt   *time.Time      `json:"published_at"`
	// LastSyncAt 兼做选取下一批任务的新旧标记，最久未同步的排在最前
	LastSyncAt time.Time `gorm:"index:idx_note_last_sync" json:"last_sync_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
