package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/analytics"
	"github.com/localate/localate/internal/cache"
	"github.com/localate/localate/internal/config"
	"github.com/localate/localate/internal/handlers"
	infraRepo "github.com/localate/localate/internal/infra/repository"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/notify"
	"github.com/localate/localate/internal/review"
	"github.com/localate/localate/internal/search"
	"github.com/localate/localate/internal/trophy"
	ucBooking "github.com/localate/localate/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	store *cache.Cache,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	sender := notify.NewLogSender(log)
	dispatcher := notify.NewDispatcher(sender, log)

	counter := analytics.NewCounter(db, log)
	reviews := review.NewAggregator(db)
	trophies := trophy.NewService(db)
	engine := search.NewEngine(db, counter)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		dispatcher,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		dispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		dispatcher,
	)

	daySlotsUC := ucBooking.NewDaySlots(bookingRepo)

	listBusinessAppointmentsUC := ucBooking.NewListBusinessAppointments(
		bookingRepo,
	)

	listUserAppointmentsUC := ucBooking.NewListUserAppointments(
		bookingRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(db, listUserAppointmentsUC)
	businessHandler := handlers.NewBusinessHandler(db, reviews, counter)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		daySlotsUC,
		listBusinessAppointmentsUC,
	)

	searchHandler := handlers.NewSearchHandler(engine, trophies, store)
	reviewHandler := handlers.NewReviewHandler(reviews, store)
	trophyHandler := handlers.NewTrophyHandler(trophies, store)
	analyticsHandler := handlers.NewAnalyticsHandler(db, counter)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/search", searchHandler.Search)
			publicAPI.GET("/autocomplete", searchHandler.Autocomplete)
			publicAPI.GET("/leaderboard", searchHandler.Leaderboard)

			publicAPI.GET("/businesses/:id", businessHandler.PublicView)
			publicAPI.GET("/businesses/:id/slots", bookingHandler.DaySlots)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.GET("/me/dashboard", meHandler.Dashboard)

			secured.GET("/me/businesses", businessHandler.ListMine)
			secured.POST("/me/businesses", businessHandler.Create)
			secured.PATCH("/me/businesses/:id", businessHandler.Update)
			secured.GET("/me/businesses/:id/appointments", bookingHandler.ListForBusiness)
			secured.GET("/me/businesses/:id/analytics", analyticsHandler.Rollup)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/businesses/:id/appointments", bookingHandler.Create)
			secured.POST("/appointments/:id/confirm", bookingHandler.Confirm)
			secured.DELETE("/appointments/:id", bookingHandler.Cancel)

			secured.POST("/businesses/:id/reviews", reviewHandler.Submit)
			secured.GET("/businesses/:id/reviews", reviewHandler.List)
			secured.POST("/businesses/:id/trophy", trophyHandler.Toggle)
		}
	}
}
