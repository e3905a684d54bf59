package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/models"
	"github.com/localate/localate/internal/timezone"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.BusinessAnalytics{}))

	return db
}

func TestRecordIncrementsOneRowPerDay(t *testing.T) {
	db := testDB(t)
	c := NewCounter(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, 1, MetricProfileViews))
	require.NoError(t, c.Record(ctx, 1, MetricProfileViews))
	require.NoError(t, c.Record(ctx, 1, MetricSearchAppearances))

	var rows []models.BusinessAnalytics
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	assert.Equal(t, 2, rows[0].ProfileViews)
	assert.Equal(t, 1, rows[0].SearchAppearances)
}

func TestRecordSeparatesBusinesses(t *testing.T) {
	db := testDB(t)
	c := NewCounter(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, 1, MetricProfileViews))
	require.NoError(t, c.Record(ctx, 2, MetricProfileViews))

	var count int64
	require.NoError(t, db.Model(&models.BusinessAnalytics{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRollupWindows(t *testing.T) {
	db := testDB(t)
	c := NewCounter(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, 1, MetricProfileViews))
	require.NoError(t, c.Record(ctx, 1, MetricSearchAppearances))

	// an old row outside every trailing window
	old := models.BusinessAnalytics{
		BusinessID:   1,
		Date:         timezone.Now().AddDate(0, 0, -90).Format(timezone.DateLayout),
		ProfileViews: 7,
	}
	require.NoError(t, db.Create(&old).Error)

	r, err := c.Rollup(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, Totals{ProfileViews: 1, SearchAppearances: 1}, r.Today)
	assert.Equal(t, Totals{ProfileViews: 1, SearchAppearances: 1}, r.Week)
	assert.Equal(t, Totals{ProfileViews: 1, SearchAppearances: 1}, r.Month)
	assert.Equal(t, Totals{ProfileViews: 8, SearchAppearances: 1}, r.AllTime)
}

func TestRollupEmpty(t *testing.T) {
	db := testDB(t)
	c := NewCounter(db, zap.NewNop())

	r, err := c.Rollup(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, Rollup{}, r)
}
