package booking

import (
	"context"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/dto"
	"github.com/localate/localate/internal/timezone"
)

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

// Execute returns the customer's upcoming appointments, each localized to
// the zone of the business it was booked at.
func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentView, error) {

	aps, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := []dto.AppointmentView{}
	for _, ap := range aps {
		tz := ap.Business.Timezone
		if !timezone.IsUpcoming(ap.Date, ap.Time, tz) {
			continue
		}

		at, err := timezone.At(ap.Date, ap.Time, tz)
		if err != nil {
			continue
		}

		views = append(views, dto.AppointmentView{
			ID:           ap.ID,
			BusinessID:   ap.BusinessID,
			Date:         ap.Date,
			Time:         ap.Time,
			LocalDate:    at.Format("January 2, 2006"),
			LocalTime:    at.Format("3:04 PM"),
			Confirmed:    ap.Confirmed,
			BusinessName: ap.Business.Name,
		})
	}

	return views, nil
}
