package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	FullName        string `gorm:"size:50" json:"full_name"`
	PhoneNumber     string `gorm:"size:20" json:"phone_number"`
	Age             int    `json:"age"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCompleteProfile reports whether every field a booking snapshot
// needs has been filled in.
func (u *User) HasCompleteProfile() bool {
	return u.FullName != "" && u.Email != "" && u.PhoneNumber != "" && u.Age > 0
}
