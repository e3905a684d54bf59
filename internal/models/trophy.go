package models

import "time"

// Trophy is a one-per-user upvote for a business.
type Trophy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `gorm:"uniqueIndex:idx_trophies_business_user" json:"business_id"`
	UserID     uint `gorm:"uniqueIndex:idx_trophies_business_user" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (Trophy) TableName() string {
	return "business_trophies"
}
