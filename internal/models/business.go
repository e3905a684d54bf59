package models

import "time"

type Business struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name        string `gorm:"size:50;not null" json:"name"`
	Category    string `gorm:"size:50" json:"category"`
	City        string `gorm:"size:50" json:"city"`
	State       string `gorm:"size:2" json:"state"`
	Description string `gorm:"size:500" json:"description"`

	OpenDays []string `gorm:"serializer:json" json:"open_days"`

	OpeningTime string `gorm:"size:8" json:"opening_time"`
	ClosingTime string `gorm:"size:8" json:"closing_time"`

	// Interval is the slot length in minutes. Zero means the default
	// of 30 minutes applies.
	Interval int `json:"interval"`

	Timezone string `gorm:"size:64;default:'UTC'" json:"timezone"`

	Trophies    int `gorm:"default:0" json:"trophies"`
	ReviewCount int `gorm:"default:0" json:"review_count"`

	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
