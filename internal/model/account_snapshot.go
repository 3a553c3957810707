package model

import (
	"time"
)

// AccountSnapshot 账号主页数据的时点快照，只追加不修改，用于还原涨粉趋势
type AccountSnapshot struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     string    `gorm:"type:varchar(64);not null;index:idx_account_user" json:"user_id"`
	Nickname   string    `gorm:"type:varchar(100)" json:"nickname"`
	AvatarURL  string    `gorm:"type:varchar(500)" json:"avatar_url"`
	IPLocation string    `gorm:"type:varchar(50)" json:"ip_location"`
	Followers  int       `gorm:"not null;default:0" json:"followers"`
	Following  int       `gorm:"not null;default:0" json:"following"`
	Liked      int       `gorm:"not null;default:0" json:"liked"`
	Collected  int       `gorm:"not null;default:0" json:"collected"`
	NoteCount  int       `gorm:"not null;default:0" json:"note_count"`
	CapturedAt time.Time `gorm:"not null;index:idx_account_captured" json:"captured_at"`
}

func (AccountSnapshot) TableName() string {
	return "account_info"
}
