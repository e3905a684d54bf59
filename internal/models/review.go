package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID     uint `gorm:"uniqueIndex:idx_reviews_user_business" json:"user_id"`
	BusinessID uint `gorm:"uniqueIndex:idx_reviews_user_business" json:"business_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
