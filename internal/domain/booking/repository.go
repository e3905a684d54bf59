package booking

import (
	"context"

	"github.com/localate/localate/internal/models"
)

type Repository interface {
	// -------- Business / User lookups --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Slot availability --------
	IsSlotTaken(
		ctx context.Context,
		businessID uint,
		date string,
		clock string,
	) (bool, error)

	ListTakenTimes(
		ctx context.Context,
		businessID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (create / lifecycle) --------

	// CreateAppointment inserts the row, returning a slot_taken business
	// error when the (business, date, time) slot is already filled.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsForBusiness(
		ctx context.Context,
		businessID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
