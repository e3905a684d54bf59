package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	BusinessID uint     `gorm:"uniqueIndex:idx_appointments_slot" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	Date string `gorm:"size:10;uniqueIndex:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:8;uniqueIndex:idx_appointments_slot" json:"time"`

	// Customer contact snapshot captured at booking time. Later profile
	// edits must not change what the owner sees for past bookings.
	Name            string `gorm:"size:50" json:"name"`
	Email           string `gorm:"size:100" json:"email"`
	Phone           string `gorm:"size:20" json:"phone"`
	Age             int    `json:"age"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	Confirmed bool `gorm:"default:false" json:"confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
