package model

import (
	"time"
)

// Cat 账号内容里的猫咪角色档案
type Cat struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Persona     string    `gorm:"type:varchar(100)" json:"persona"` // 人设标签，例如 "高冷大姐"
	Description string    `gorm:"type:varchar(500)" json:"description"`
	AvatarURL   string    `gorm:"type:varchar(500)" json:"avatar_url"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Cat) TableName() string {
	return "cats"
}
