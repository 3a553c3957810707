package model

import (
	"time"
)

// WeeklyStat 手工录入的周报数据，按日期区间字符串唯一，只追加
type WeeklyStat struct {
	ID           uint64    `gorm:"primaryKey"`
	DateRange    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_weekly_range" json:"date_range"` // 例如 "2026-08-17~2026-08-23"
	NewFollowers int       `gorm:"not null;default:0" json:"new_followers"`
	Likes        int       `gorm:"not null;default:0" json:"likes"`
	Collects     int       `gorm:"not null;default:0" json:"collects"`
	Comments     int       `gorm:"not null;default:0" json:"comments"`
	Views        int       `gorm:"not null;default:0" json:"views"`
	FemaleRatio  float64   `gorm:"not null;default:0" json:"female_ratio"` // 女性观众占比，百分比
	CreatedAt    time.Time `json:"created_at"`
}

func (WeeklyStat) TableName() string {
	return "weekly_stats"
}
