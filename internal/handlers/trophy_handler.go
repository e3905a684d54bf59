package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localate/localate/internal/cache"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/trophy"
)

type TrophyHandler struct {
	trophies *trophy.Service
	cache    *cache.Cache
}

func NewTrophyHandler(trophies *trophy.Service, cache *cache.Cache) *TrophyHandler {
	return &TrophyHandler{
		trophies: trophies,
		cache:    cache,
	}
}

// Toggle flips the caller's trophy for a business and reports the new state.
func (h *TrophyHandler) Toggle(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	awarded, err := h.trophies.Toggle(c.Request.Context(), userID, businessID)
	if err != nil {
		if httperr.IsBusiness(err, "business_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "business_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "trophy_toggle_failed"})
		return
	}

	// trophy counts feed the leaderboard ordering
	h.cache.Invalidate(c.Request.Context(), leaderboardCacheKey)

	c.JSON(http.StatusOK, gin.H{"awarded": awarded})
}
