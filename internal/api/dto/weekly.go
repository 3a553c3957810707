package dto

import "time"

// CreateWeeklyStatDTO 手工录入周报
type CreateWeeklyStatDTO struct {
	DateRange    string  `json:"date_range" binding:"required" validate:"max=50"`
	NewFollowers int     `json:"new_followers" binding:"min=0"`
	Likes        int     `json:"likes" binding:"min=0"`
	Collects     int     `json:"collects" binding:"min=0"`
	Comments     int     `json:"comments" binding:"min=0"`
	Views        int     `json:"views" binding:"min=0"`
	FemaleRatio  float64 `json:"female_ratio" binding:"min=0,max=100"`
}

// WeeklyStatDTO 周报明细
type WeeklyStatDTO struct {
	DateRange    string    `json:"date_range"`
	NewFollowers int       `json:"new_followers"`
	Likes        int       `json:"likes"`
	Collects     int       `json:"collects"`
	Comments     int       `json:"comments"`
	Views        int       `json:"views"`
	FemaleRatio  float64   `json:"female_ratio"`
	CreatedAt    time.Time `json:"created_at"`
}
