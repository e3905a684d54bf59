package booking

import (
	"context"
	"fmt"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/notify"
)

type CancelBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		notify: notify,
	}
}

// Execute deletes the appointment, freeing its slot. Only the customer who
// booked may cancel. The owner is told the slot reopened.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if ap.UserID != actorID {
		return httperr.ErrBusiness("unauthorized")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	business, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil
	}

	if owner, err := uc.repo.GetUserByID(ctx, business.UserID); err == nil {
		uc.notify.Dispatch(notify.Message{
			Recipient: owner.Email,
			Subject:   fmt.Sprintf("Appointment cancelled at %s", business.Name),
			HTMLBody: fmt.Sprintf(
				"<p>%s cancelled their appointment on %s at %s. The slot is open again.</p>",
				ap.Name, ap.Date, ap.Time,
			),
		})
	}

	return nil
}
