package validators

import "github.com/localate/localate/internal/timezone"

// BusinessInput is the owner-supplied portion of a business create/edit.
type BusinessInput struct {
	Name        string
	Category    string
	City        string
	State       string
	Description string
	OpenDays    []string
	OpeningTime string
	ClosingTime string
	Interval    int
	Timezone    string
}

// ValidateBusiness returns a user-correctable error code, or "" when the
// input is acceptable. Messages stay field-specific like the original form.
func ValidateBusiness(in BusinessInput) string {
	if in.Name == "" {
		return "name_required"
	}
	if len(in.Name) > 50 {
		return "name_too_long"
	}
	if in.City == "" {
		return "city_required"
	}
	if len(in.City) > 50 {
		return "city_too_long"
	}
	if in.State == "" {
		return "state_required"
	}
	if len(in.Description) > 500 {
		return "description_too_long"
	}
	if len(in.OpenDays) == 0 {
		return "open_days_required"
	}
	if in.Interval <= 0 {
		return "interval_required"
	}
	if in.Timezone == "" {
		return "timezone_required"
	}

	open, errOpen := timezone.ParseClock(in.OpeningTime)
	closeAt, errClose := timezone.ParseClock(in.ClosingTime)
	if errOpen != nil || errClose != nil {
		return "invalid_hours"
	}
	if !open.Before(closeAt) {
		return "opening_after_closing"
	}

	return ""
}
