package booking

// Slot is one bookable position in a business's day.
type Slot struct {
	Time    string `json:"time"`    // HH:MM:SS
	Display string `json:"display"` // 12-hour clock, e.g. "9:00 AM"
	Taken   bool   `json:"taken"`
	Past    bool   `json:"past"`
}

type CreateInput struct {
	BusinessID uint
	UserID     uint

	Date string // YYYY-MM-DD
	Time string // HH:MM or HH:MM:SS
}

// DefaultIntervalMinutes applies when a business has no interval configured.
const DefaultIntervalMinutes = 30
