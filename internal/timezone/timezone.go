package timezone

import (
	"time"
)

const DefaultTimezone = "UTC"

const (
	DateLayout = "2006-01-02"
	// Clock12 renders a time of day as "3:04 PM" (no leading zero).
	clock12Layout = "3:04 PM"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves an IANA zone name, silently falling back to UTC on
// lookup failure so a bad stored zone never fails a request.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().UTC()
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseClock accepts a stored time of day as either HH:MM:SS or HH:MM.
func ParseClock(clock string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", clock); err == nil {
		return t, nil
	}
	return time.Parse("15:04", clock)
}

// NormalizeClock widens HH:MM input to the canonical HH:MM:SS stored form.
func NormalizeClock(clock string) (string, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

// On combines a calendar day with a clock string into a zone-aware instant
// on that day.
func On(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		loc,
	), nil
}

// Clock12 renders a stored clock string as a 12-hour display string in the
// business's own zone, e.g. "09:00:00" -> "9:00 AM".
func Clock12(clock string, tz string) (string, error) {
	loc := Location(tz)
	day := time.Now().In(loc)
	at, err := On(day, clock, loc)
	if err != nil {
		return "", err
	}
	return at.Format(clock12Layout), nil
}

// At resolves a stored date + clock pair into an instant in the given zone.
func At(date string, clock string, tz string) (time.Time, error) {
	loc := Location(tz)
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return On(day, clock, loc)
}

// IsUpcoming reports whether the appointment instant is now or later in the
// business's zone. Unparseable rows are treated as past and dropped from
// dashboards rather than failing the listing.
func IsUpcoming(date string, clock string, tz string) bool {
	at, err := At(date, clock, tz)
	if err != nil {
		return false
	}
	return !at.Before(NowIn(tz))
}
