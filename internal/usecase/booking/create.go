package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/notify"
	"github.com/localate/localate/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Business
	// --------------------------------------------------
	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	// --------------------------------------------------
	// Customer profile (snapshot source)
	// --------------------------------------------------
	customer, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !customer.HasCompleteProfile() {
		return nil, httperr.ErrBusiness("profile_incomplete")
	}

	// --------------------------------------------------
	// Date / time in the business's timezone
	// --------------------------------------------------
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	clock, err := timezone.NormalizeClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse(timezone.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !timezone.IsUpcoming(in.Date, clock, business.Timezone) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// --------------------------------------------------
	// Insert with profile snapshot; the unique slot index
	// resolves concurrent bookings for the same slot
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          customer.ID,
		BusinessID:      business.ID,
		Date:            in.Date,
		Time:            clock,
		Name:            customer.FullName,
		Email:           customer.Email,
		Phone:           customer.PhoneNumber,
		Age:             customer.Age,
		ProfileImageURL: customer.ProfileImageURL,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Owner notification (fire-and-forget)
	// --------------------------------------------------
	if owner, err := uc.repo.GetUserByID(ctx, business.UserID); err == nil {
		uc.notify.Dispatch(notify.Message{
			Recipient: owner.Email,
			Subject:   fmt.Sprintf("New appointment at %s", business.Name),
			HTMLBody:  bookingEmailBody(business, ap),
		})
	}

	return ap, nil
}

// ======================================================
// EMAIL
// ======================================================

func bookingEmailBody(business *models.Business, ap *models.Appointment) string {
	localTime, _ := timezone.Clock12(ap.Time, business.Timezone)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New appointment for %s</h2>", business.Name)
	fmt.Fprintf(&b, "<p>%s booked %s at %s.</p>", ap.Name, ap.Date, localTime)
	fmt.Fprintf(&b, "<p>Contact: %s / %s</p>", ap.Email, ap.Phone)
	fmt.Fprintf(&b, `<p><a href="%s">Add to Google Calendar</a></p>`,
		calendarLink(business, ap))
	return b.String()
}

// calendarLink builds a Google Calendar "add event" URL for the slot.
func calendarLink(business *models.Business, ap *models.Appointment) string {
	start, err := timezone.At(ap.Date, ap.Time, business.Timezone)
	if err != nil {
		return ""
	}

	interval := business.Interval
	if interval <= 0 {
		interval = domain.DefaultIntervalMinutes
	}
	end := start.Add(time.Duration(interval) * time.Minute)

	const stamp = "20060102T150405"
	return fmt.Sprintf(
		"https://calendar.google.com/calendar/render?action=TEMPLATE&text=%s&dates=%s/%s&ctz=%s",
		strings.ReplaceAll(business.Name, " ", "+"),
		start.Format(stamp),
		end.Format(stamp),
		business.Timezone,
	)
}
