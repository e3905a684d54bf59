package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/localate/localate/internal/domain/booking"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/httpresp"
	"github.com/localate/localate/internal/middleware"
	ucBooking "github.com/localate/localate/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC    *ucBooking.CreateBooking
	confirmUC   *ucBooking.ConfirmBooking
	cancelUC    *ucBooking.CancelBooking
	slotsUC     *ucBooking.DaySlots
	listOwnerUC *ucBooking.ListBusinessAppointments
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	slotsUC *ucBooking.DaySlots,
	listOwnerUC *ucBooking.ListBusinessAppointments,
) *BookingHandler {
	return &BookingHandler{
		createUC:    createUC,
		confirmUC:   confirmUC,
		cancelUC:    cancelUC,
		slotsUC:     slotsUC,
		listOwnerUC: listOwnerUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM or HH:MM:SS
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and time are required.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateInput{
		BusinessID: businessID,
		UserID:     userID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), appointmentID, userID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), appointmentID, userID); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ======================================================
// SLOTS
// ======================================================

func (h *BookingHandler) DaySlots(c *gin.Context) {
	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), businessID, dateStr)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// OWNER LISTING
// ======================================================

func (h *BookingHandler) ListForBusiness(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	views, err := h.listOwnerUC.Execute(c.Request.Context(), businessID, userID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "This time slot is already booked.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "That time has already passed.")
	case httperr.IsBusiness(err, "profile_incomplete"):
		httperr.BadRequest(c, "profile_incomplete", "Please complete your profile before booking.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "invalid_hours"):
		httperr.Internal(c, "invalid_hours", "This business has invalid operating hours.")
	case httperr.IsBusiness(err, "business_not_found"):
		httperr.NotFound(c, "business_not_found", "Business not found.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "unauthorized"):
		httperr.Forbidden(c, "unauthorized", "You are not allowed to do that.")
	default:
		middleware.Logger(c).Error("booking operation failed", zap.Error(err))
		httperr.Internal(c, "booking_failed", "Something went wrong. Please try again later.")
	}
}
