package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	infraRepo "github.com/localate/localate/internal/infra/repository"
	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/notify"
	"github.com/localate/localate/internal/timezone"
	ucBooking "github.com/localate/localate/internal/usecase/booking"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Appointment{},
	))

	return db
}

func testDispatcher() *notify.Dispatcher {
	log := zap.NewNop()
	return notify.NewDispatcher(notify.NewLogSender(log), log)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		FullName:    "Test " + username,
		PhoneNumber: "5035551234",
		Age:         30,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBusiness(t *testing.T, db *gorm.DB, ownerID uint) *models.Business {
	t.Helper()
	b := &models.Business{
		UserID:      ownerID,
		Name:        "Joe's Coffee",
		Category:    "Cafe",
		City:        "Portland",
		State:       "OR",
		OpenDays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday",
			"Thursday", "Friday", "Saturday",
		},
		OpeningTime: "09:00:00",
		ClosingTime: "11:00:00",
		Interval:    30,
		Timezone:    "UTC",
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format(timezone.DateLayout)
}

func TestCreateBookingSnapshotsProfile(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := ucBooking.NewCreateBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	customer := seedUser(t, db, "customer")
	business := seedBusiness(t, db, owner.ID)

	ap, err := uc.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     customer.ID,
		Date:       futureDate(),
		Time:       "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "09:30:00", ap.Time)
	assert.Equal(t, customer.FullName, ap.Name)
	assert.Equal(t, customer.Email, ap.Email)
	assert.Equal(t, customer.PhoneNumber, ap.Phone)
	assert.False(t, ap.Confirmed)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := ucBooking.NewCreateBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")
	business := seedBusiness(t, db, owner.ID)

	date := futureDate()

	_, err := uc.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     first.ID,
		Date:       date,
		Time:       "09:30:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     second.ID,
		Date:       date,
		Time:       "09:30:00",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingRequiresCompleteProfile(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := ucBooking.NewCreateBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	business := seedBusiness(t, db, owner.ID)

	incomplete := &models.User{
		Username: "newbie",
		Email:    "newbie@example.com",
	}
	require.NoError(t, db.Create(incomplete).Error)

	_, err := uc.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     incomplete.ID,
		Date:       futureDate(),
		Time:       "09:30:00",
	})
	assert.True(t, httperr.IsBusiness(err, "profile_incomplete"))
}

func TestCreateBookingRejectsPastSlot(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := ucBooking.NewCreateBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	customer := seedUser(t, db, "customer")
	business := seedBusiness(t, db, owner.ID)

	past := time.Now().UTC().AddDate(0, 0, -7).Format(timezone.DateLayout)

	_, err := uc.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     customer.ID,
		Date:       past,
		Time:       "09:30:00",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_in_past"))
}

func TestCancelBookingFreesSlot(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	createUC := ucBooking.NewCreateBooking(repo, testDispatcher())
	cancelUC := ucBooking.NewCancelBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")
	business := seedBusiness(t, db, owner.ID)

	date := futureDate()

	ap, err := createUC.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     first.ID,
		Date:       date,
		Time:       "10:00:00",
	})
	require.NoError(t, err)

	taken, err := repo.IsSlotTaken(context.Background(), business.ID, date, "10:00:00")
	require.NoError(t, err)
	assert.True(t, taken)

	// only the booker may cancel
	err = cancelUC.Execute(context.Background(), ap.ID, second.ID)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))

	require.NoError(t, cancelUC.Execute(context.Background(), ap.ID, first.ID))

	taken, err = repo.IsSlotTaken(context.Background(), business.ID, date, "10:00:00")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = createUC.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     second.ID,
		Date:       date,
		Time:       "10:00:00",
	})
	assert.NoError(t, err)
}

func TestConfirmBookingOwnerOnly(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	createUC := ucBooking.NewCreateBooking(repo, testDispatcher())
	confirmUC := ucBooking.NewConfirmBooking(repo, testDispatcher())

	owner := seedUser(t, db, "owner")
	customer := seedUser(t, db, "customer")
	stranger := seedUser(t, db, "stranger")
	business := seedBusiness(t, db, owner.ID)

	ap, err := createUC.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     customer.ID,
		Date:       futureDate(),
		Time:       "09:00:00",
	})
	require.NoError(t, err)

	_, err = confirmUC.Execute(context.Background(), ap.ID, stranger.ID)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))

	var stored models.Appointment
	require.NoError(t, db.First(&stored, ap.ID).Error)
	assert.False(t, stored.Confirmed)

	confirmed, err := confirmUC.Execute(context.Background(), ap.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)
}

func TestDaySlots(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	createUC := ucBooking.NewCreateBooking(repo, testDispatcher())
	slotsUC := ucBooking.NewDaySlots(repo)

	owner := seedUser(t, db, "owner")
	customer := seedUser(t, db, "customer")
	business := seedBusiness(t, db, owner.ID)

	date := futureDate()

	_, err := createUC.Execute(context.Background(), domain.CreateInput{
		BusinessID: business.ID,
		UserID:     customer.ID,
		Date:       date,
		Time:       "09:30:00",
	})
	require.NoError(t, err)

	slots, err := slotsUC.Execute(context.Background(), business.ID, date)
	require.NoError(t, err)

	// 09:00 to 11:00 every 30 minutes
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00:00", slots[0].Time)
	assert.Equal(t, "9:00 AM", slots[0].Display)
	assert.Equal(t, "10:30:00", slots[3].Time)

	assert.False(t, slots[0].Taken)
	assert.True(t, slots[1].Taken)

	for _, s := range slots {
		assert.False(t, s.Past)
	}
}

func TestDaySlotsClosedDay(t *testing.T) {
	db := testDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	slotsUC := ucBooking.NewDaySlots(repo)

	owner := seedUser(t, db, "owner")
	business := seedBusiness(t, db, owner.ID)
	business.OpenDays = []string{"Monday"}
	require.NoError(t, db.Save(business).Error)

	// find an upcoming Tuesday
	day := time.Now().UTC().AddDate(0, 0, 1)
	for day.Weekday() != time.Tuesday {
		day = day.AddDate(0, 0, 1)
	}

	slots, err := slotsUC.Execute(
		context.Background(),
		business.ID,
		day.Format(timezone.DateLayout),
	)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
