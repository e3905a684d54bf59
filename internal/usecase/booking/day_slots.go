package booking

import (
	"context"
	"time"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/timezone"
)

type DaySlots struct {
	repo domain.Repository
}

func NewDaySlots(repo domain.Repository) *DaySlots {
	return &DaySlots{repo: repo}
}

// Execute generates the bookable slots for one business day: opening to
// closing stepped by the business interval, with taken and past flags. A day
// the business is closed yields an empty list.
func (uc *DaySlots) Execute(
	ctx context.Context,
	businessID uint,
	dateStr string,
) ([]domain.Slot, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	loc := timezone.Location(business.Timezone)
	day, err := time.ParseInLocation(timezone.DateLayout, dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !openOn(business.OpenDays, day.Weekday()) {
		return []domain.Slot{}, nil
	}

	open, err := timezone.On(day, business.OpeningTime, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_hours")
	}
	closeAt, err := timezone.On(day, business.ClosingTime, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_hours")
	}

	takenTimes, err := uc.repo.ListTakenTimes(ctx, businessID, dateStr)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(takenTimes))
	for _, t := range takenTimes {
		taken[t] = true
	}

	interval := business.Interval
	if interval <= 0 {
		interval = domain.DefaultIntervalMinutes
	}
	step := time.Duration(interval) * time.Minute

	now := timezone.NowIn(business.Timezone)

	var slots []domain.Slot
	for cur := open; cur.Add(step).Before(closeAt) || cur.Add(step).Equal(closeAt); cur = cur.Add(step) {
		clock := cur.Format("15:04:05")
		slots = append(slots, domain.Slot{
			Time:    clock,
			Display: cur.Format("3:04 PM"),
			Taken:   taken[clock],
			Past:    cur.Before(now),
		})
	}

	if slots == nil {
		slots = []domain.Slot{}
	}

	return slots, nil
}

func openOn(openDays []string, weekday time.Weekday) bool {
	name := weekday.String()
	for _, d := range openDays {
		if d == name {
			return true
		}
	}
	return false
}
