package analytics

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/timezone"
)

type Metric string

const (
	MetricProfileViews      Metric = "profile_views"
	MetricSearchAppearances Metric = "search_appearances"
)

// Counter maintains the per-business, per-day view/search counters.
type Counter struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCounter(db *gorm.DB, log *zap.Logger) *Counter {
	return &Counter{db: db, log: log}
}

// Record bumps today's counter for the business by one. The increment is a
// single conditional write: insert the day row at 1, or atomically add 1 to
// the existing row, so concurrent hits never lose counts.
func (c *Counter) Record(ctx context.Context, businessID uint, metric Metric) error {
	col := string(metric)

	row := models.BusinessAnalytics{
		BusinessID: businessID,
		Date:       timezone.Now().Format(timezone.DateLayout),
	}
	switch metric {
	case MetricProfileViews:
		row.ProfileViews = 1
	case MetricSearchAppearances:
		row.SearchAppearances = 1
	default:
		return nil
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "business_id"},
				{Name: "date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				col: gorm.Expr(col + " + 1"),
			}),
		}).
		Create(&row).Error
}

// Bump is Record for paths where analytics must never fail the request:
// errors are logged and swallowed.
func (c *Counter) Bump(ctx context.Context, businessID uint, metric Metric) {
	if err := c.Record(ctx, businessID, metric); err != nil {
		c.log.Warn("analytics increment failed",
			zap.Uint("business_id", businessID),
			zap.String("metric", string(metric)),
			zap.Error(err),
		)
	}
}

// ======================================================
// ROLLUPS
// ======================================================

type Totals struct {
	ProfileViews      int `json:"profile_views"`
	SearchAppearances int `json:"search_appearances"`
}

type Rollup struct {
	Today   Totals `json:"today"`
	Week    Totals `json:"week"`  // trailing 7 days
	Month   Totals `json:"month"` // trailing 30 days
	AllTime Totals `json:"all_time"`
}

// Rollup sums the counters over today, the trailing 7-day and 30-day
// windows, and all time, each as its own aggregate query.
func (c *Counter) Rollup(ctx context.Context, businessID uint) (Rollup, error) {
	now := timezone.Now()
	today := now.Format(timezone.DateLayout)
	weekStart := now.AddDate(0, 0, -6).Format(timezone.DateLayout)
	monthStart := now.AddDate(0, 0, -29).Format(timezone.DateLayout)

	var r Rollup
	var err error

	if r.Today, err = c.sumSince(ctx, businessID, today); err != nil {
		return r, err
	}
	if r.Week, err = c.sumSince(ctx, businessID, weekStart); err != nil {
		return r, err
	}
	if r.Month, err = c.sumSince(ctx, businessID, monthStart); err != nil {
		return r, err
	}
	if r.AllTime, err = c.sumSince(ctx, businessID, ""); err != nil {
		return r, err
	}

	return r, nil
}

func (c *Counter) sumSince(ctx context.Context, businessID uint, from string) (Totals, error) {
	var row struct {
		Views       *int
		Appearances *int
	}

	q := c.db.WithContext(ctx).
		Model(&models.BusinessAnalytics{}).
		Select("SUM(profile_views) AS views, SUM(search_appearances) AS appearances").
		Where("business_id = ?", businessID)

	if from != "" {
		q = q.Where("date >= ?", from)
	}

	if err := q.Scan(&row).Error; err != nil {
		return Totals{}, err
	}

	var t Totals
	if row.Views != nil {
		t.ProfileViews = *row.Views
	}
	if row.Appearances != nil {
		t.SearchAppearances = *row.Appearances
	}
	return t, nil
}
