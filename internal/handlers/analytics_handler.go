package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/analytics"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/models"
)

type AnalyticsHandler struct {
	db      *gorm.DB
	counter *analytics.Counter
}

func NewAnalyticsHandler(db *gorm.DB, counter *analytics.Counter) *AnalyticsHandler {
	return &AnalyticsHandler{
		db:      db,
		counter: counter,
	}
}

// Rollup reports a business's view/search counters over the standard
// windows. Owner-only.
func (h *AnalyticsHandler) Rollup(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.
		Where("id = ? AND user_id = ?", businessID, userID).
		First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
		return
	}

	rollup, err := h.counter.Rollup(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics_failed"})
		return
	}

	c.JSON(http.StatusOK, rollup)
}
