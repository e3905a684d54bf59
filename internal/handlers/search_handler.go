package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/localate/localate/internal/cache"
	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/middleware"
	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/search"
	"github.com/localate/localate/internal/trophy"
)

type SearchHandler struct {
	engine   *search.Engine
	trophies *trophy.Service
	cache    *cache.Cache
}

func NewSearchHandler(
	engine *search.Engine,
	trophies *trophy.Service,
	cache *cache.Cache,
) *SearchHandler {
	return &SearchHandler{
		engine:   engine,
		trophies: trophies,
		cache:    cache,
	}
}

// leaderboardCacheKey is shared with the write paths that invalidate it.
const leaderboardCacheKey = "leaderboard:top"

// ======================================================
// SEARCH
// ======================================================

func (h *SearchHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	result, err := h.engine.Search(c.Request.Context(), search.Params{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
		Page:     page,
	})
	if err != nil {
		middleware.Logger(c).Error("search failed", zap.Error(err))
		httperr.Internal(c, "search_failed", "Search is unavailable right now.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// AUTOCOMPLETE
// ======================================================

func (h *SearchHandler) Autocomplete(c *gin.Context) {
	partial := c.Query("q")
	if partial == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	key := "autocomplete:" + partial
	var names []string
	if h.cache.GetJSON(c.Request.Context(), key, &names) {
		c.JSON(http.StatusOK, names)
		return
	}

	names, err := h.engine.Autocomplete(c.Request.Context(), partial)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "autocomplete_failed"})
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, names, time.Minute)

	c.JSON(http.StatusOK, names)
}

// ======================================================
// LEADERBOARD
// ======================================================

func (h *SearchHandler) Leaderboard(c *gin.Context) {
	var top []models.Business
	if h.cache.GetJSON(c.Request.Context(), leaderboardCacheKey, &top) {
		c.JSON(http.StatusOK, top)
		return
	}

	top, err := h.trophies.Leaderboard(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard_failed"})
		return
	}

	h.cache.SetJSON(c.Request.Context(), leaderboardCacheKey, top, time.Minute)

	c.JSON(http.StatusOK, top)
}
