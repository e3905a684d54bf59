package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/models"
	ucBooking "github.com/localate/localate/internal/usecase/booking"
	"github.com/localate/localate/internal/validators"
)

type MeHandler struct {
	db          *gorm.DB
	dashboardUC *ucBooking.ListUserAppointments
}

func NewMeHandler(db *gorm.DB, dashboardUC *ucBooking.ListUserAppointments) *MeHandler {
	return &MeHandler{
		db:          db,
		dashboardUC: dashboardUC,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ======================================================
// PROFILE EDIT
// ======================================================

type UpdateProfileRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Age             int    `json:"age" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill out all required fields: Full Name, Age, and Phone Number.")
		return
	}

	if !validators.ValidFullName(req.FullName) {
		httperr.BadRequest(c, "invalid_full_name", "Full Name must be 50 characters or fewer.")
		return
	}
	if !validators.ValidAge(req.Age) {
		httperr.BadRequest(c, "invalid_age", "Please enter a valid age between 1 and 120.")
		return
	}
	if !validators.ValidPhone(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone", "Phone number must be between 10 and 14 characters.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load your profile.")
		return
	}

	user.FullName = req.FullName
	user.Age = req.Age
	user.PhoneNumber = req.PhoneNumber
	if req.ProfileImageURL != "" {
		user.ProfileImageURL = req.ProfileImageURL
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update your profile.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ======================================================
// DASHBOARD
// ======================================================

// Dashboard bundles the user's businesses with their upcoming bookings.
func (h *MeHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var businesses []models.Business
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Failed to load dashboard.")
		return
	}

	appointments, err := h.dashboardUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Failed to load dashboard.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businesses":   businesses,
		"appointments": appointments,
	})
}
