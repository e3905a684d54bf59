package booking

import (
	"context"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/dto"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/timezone"
)

type ListBusinessAppointments struct {
	repo domain.Repository
}

func NewListBusinessAppointments(repo domain.Repository) *ListBusinessAppointments {
	return &ListBusinessAppointments{repo: repo}
}

// Execute returns the business's upcoming appointments for its owner, with
// date/time localized to the business's zone. Past appointments are dropped.
func (uc *ListBusinessAppointments) Execute(
	ctx context.Context,
	businessID uint,
	actorID uint,
) ([]dto.AppointmentView, error) {

	business, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	if business.UserID != actorID {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	aps, err := uc.repo.ListAppointmentsForBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	views := []dto.AppointmentView{}
	for _, ap := range aps {
		if !timezone.IsUpcoming(ap.Date, ap.Time, business.Timezone) {
			continue
		}

		at, err := timezone.At(ap.Date, ap.Time, business.Timezone)
		if err != nil {
			continue
		}

		views = append(views, dto.AppointmentView{
			ID:            ap.ID,
			BusinessID:    ap.BusinessID,
			Date:          ap.Date,
			Time:          ap.Time,
			LocalDate:     at.Format("January 2, 2006"),
			LocalTime:     at.Format("3:04 PM"),
			Confirmed:     ap.Confirmed,
			BusinessName:  business.Name,
			CustomerName:  ap.Name,
			CustomerEmail: ap.Email,
			CustomerPhone: ap.Phone,
			CustomerAge:   ap.Age,
			CustomerImage: ap.ProfileImageURL,
		})
	}

	return views, nil
}
