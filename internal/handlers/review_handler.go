package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localate/localate/internal/cache"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/review"
)

type ReviewHandler struct {
	reviews *review.Aggregator
	cache   *cache.Cache
}

func NewReviewHandler(reviews *review.Aggregator, cache *cache.Cache) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		cache:   cache,
	}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Submit creates or replaces the caller's review for the business.
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rating is required.")
		return
	}

	rv, err := h.reviews.Upsert(
		c.Request.Context(),
		userID,
		businessID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_rating"):
			httperr.BadRequest(c, "invalid_rating", "Rating must be a whole number from 1 to 5.")
		case httperr.IsBusiness(err, "business_not_found"):
			httperr.NotFound(c, "business_not_found", "Business not found.")
		default:
			httperr.Internal(c, "failed_to_save_review", "Failed to save your review.")
		}
		return
	}

	// review counts break leaderboard ties
	h.cache.Invalidate(c.Request.Context(), leaderboardCacheKey)

	c.JSON(http.StatusOK, rv)
}

// List returns a business's reviews with the rating aggregates.
func (h *ReviewHandler) List(c *gin.Context) {
	businessID, ok := paramID(c, "id")
	if !ok {
		return
	}

	summary, err := h.reviews.Summary(c.Request.Context(), businessID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_reviews", "Failed to load reviews.")
		return
	}

	reviews, err := h.reviews.List(c.Request.Context(), businessID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_reviews", "Failed to load reviews.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"average_rating": summary.Average,
		"review_count":   summary.Count,
		"reviews":        reviews,
	})
}
