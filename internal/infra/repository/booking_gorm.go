package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business / User
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Slot availability
// --------------------------------------------------

func (r *BookingGormRepository) IsSlotTaken(
	ctx context.Context,
	businessID uint,
	date string,
	clock string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND date = ? AND time = ?",
			businessID, date, clock,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListTakenTimes(
	ctx context.Context,
	businessID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("business_id = ? AND date = ?", businessID, date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointment (create / lifecycle)
// --------------------------------------------------

// CreateAppointment relies on the unique (business_id, date, time) index:
// a conflicting insert affects zero rows instead of racing a separate
// availability check.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "business_id"},
				{Name: "date"},
				{Name: "time"},
			},
			DoNothing: true,
		}).
		Create(ap)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForBusiness(
	ctx context.Context,
	businessID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date ASC").
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Business").
		Where("user_id = ?", userID).
		Order("date ASC").
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
