package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/analytics"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/httpresp"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/review"
	"github.com/localate/localate/internal/timezone"
	"github.com/localate/localate/internal/validators"
)

type BusinessHandler struct {
	db      *gorm.DB
	reviews *review.Aggregator
	counter *analytics.Counter
}

func NewBusinessHandler(
	db *gorm.DB,
	reviews *review.Aggregator,
	counter *analytics.Counter,
) *BusinessHandler {
	return &BusinessHandler{
		db:      db,
		reviews: reviews,
		counter: counter,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BusinessRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Description string   `json:"description"`
	OpenDays    []string `json:"open_days"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	Interval    int      `json:"interval"`
	Timezone    string   `json:"timezone"`
}

func (r BusinessRequest) toInput() validators.BusinessInput {
	return validators.BusinessInput{
		Name:        r.Name,
		Category:    r.Category,
		City:        r.City,
		State:       r.State,
		Description: r.Description,
		OpenDays:    r.OpenDays,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		Interval:    r.Interval,
		Timezone:    r.Timezone,
	}
}

// businessValidationMessages mirrors the form-level messages users see.
var businessValidationMessages = map[string]string{
	"name_required":         "Business name is required.",
	"name_too_long":         "Business name must be under 50 characters.",
	"city_required":         "Please select a city.",
	"city_too_long":         "City name must be under 50 characters.",
	"state_required":        "Please select a state.",
	"description_too_long":  "Description must be under 500 characters.",
	"open_days_required":    "Please select at least one open day.",
	"interval_required":     "Please select an appointment interval.",
	"timezone_required":     "Please select a timezone.",
	"invalid_hours":         "Opening and closing times must be valid.",
	"opening_after_closing": "Opening time must be earlier than closing time.",
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *BusinessHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if code := validators.ValidateBusiness(req.toInput()); code != "" {
		httperr.BadRequest(c, code, businessValidationMessages[code])
		return
	}

	opening, _ := timezone.NormalizeClock(req.OpeningTime)
	closing, _ := timezone.NormalizeClock(req.ClosingTime)

	business := models.Business{
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		City:        req.City,
		State:       req.State,
		Description: req.Description,
		OpenDays:    req.OpenDays,
		OpeningTime: opening,
		ClosingTime: closing,
		Interval:    req.Interval,
		Timezone:    req.Timezone,
	}

	if err := h.db.Create(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_create_business", "Failed to create business. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, business)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.
		Where("id = ? AND user_id = ?", businessID, userID).
		First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found or you don't have permission to edit it.")
		return
	}

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if code := validators.ValidateBusiness(req.toInput()); code != "" {
		httperr.BadRequest(c, code, businessValidationMessages[code])
		return
	}

	opening, _ := timezone.NormalizeClock(req.OpeningTime)
	closing, _ := timezone.NormalizeClock(req.ClosingTime)

	business.Name = req.Name
	business.Category = req.Category
	business.City = req.City
	business.State = req.State
	business.Description = req.Description
	business.OpenDays = req.OpenDays
	business.OpeningTime = opening
	business.ClosingTime = closing
	business.Interval = req.Interval
	business.Timezone = req.Timezone

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Failed to update business. Please try again.")
		return
	}

	c.JSON(http.StatusOK, business)
}

// ======================================================
// LISTINGS / PUBLIC VIEW
// ======================================================

func (h *BusinessHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var businesses []models.Business
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Failed to load your businesses.")
		return
	}

	httpresp.List(c, businesses)
}

// PublicView renders a business profile: hours in the business's own zone
// as 12-hour strings, rating aggregates and the trophy count. Each view
// bumps the daily profile-view counter, best-effort.
func (h *BusinessHandler) PublicView(c *gin.Context) {
	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	opening, _ := timezone.Clock12(business.OpeningTime, business.Timezone)
	closing, _ := timezone.Clock12(business.ClosingTime, business.Timezone)

	summary, err := h.reviews.Summary(c.Request.Context(), business.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_business", "Failed to load business.")
		return
	}

	h.counter.Bump(c.Request.Context(), business.ID, analytics.MetricProfileViews)

	c.JSON(http.StatusOK, gin.H{
		"business":        business,
		"opening_display": opening,
		"closing_display": closing,
		"average_rating":  summary.Average,
		"review_count":    summary.Count,
		"trophies":        business.Trophies,
	})
}
