package booking

import (
	"context"
	"fmt"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/notify"
	"github.com/localate/localate/internal/timezone"
)

type ConfirmBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewConfirmBooking(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		notify: notify,
	}
}

// Execute marks the appointment confirmed. Only the owner of the
// appointment's business may confirm; everyone else gets a blanket denial.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	business, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	if business.UserID != actorID {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	ap.Confirmed = true
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	localDate, localTime := localizedSlot(ap, business)
	uc.notify.Dispatch(notify.Message{
		Recipient: ap.Email,
		Subject:   fmt.Sprintf("Your appointment at %s is confirmed", business.Name),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s, your appointment at %s on %s at %s has been confirmed.</p>",
			ap.Name, business.Name, localDate, localTime,
		),
	})

	return ap, nil
}

// localizedSlot renders the stored date/time pair in the business's zone.
func localizedSlot(ap *models.Appointment, business *models.Business) (string, string) {
	at, err := timezone.At(ap.Date, ap.Time, business.Timezone)
	if err != nil {
		return ap.Date, ap.Time
	}
	return at.Format("January 2, 2006"), at.Format("3:04 PM")
}
