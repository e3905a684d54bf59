package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/localate/localate/internal/analytics"
	"github.com/localate/localate/internal/models"
)

func testEngine(t *testing.T) (*Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Business{},
		&models.BusinessAnalytics{},
	))

	return NewEngine(db, analytics.NewCounter(db, zap.NewNop())), db
}

func seed(t *testing.T, db *gorm.DB, businesses ...models.Business) {
	t.Helper()
	for i := range businesses {
		if businesses[i].Timezone == "" {
			businesses[i].Timezone = "UTC"
		}
		require.NoError(t, db.Create(&businesses[i]).Error)
	}
}

func TestSearchEmptyFiltersIsNotASearch(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db, models.Business{Name: "Joe's Coffee"})

	result, err := engine.Search(context.Background(), Params{})
	require.NoError(t, err)

	assert.False(t, result.Searched)
	assert.Empty(t, result.Businesses)
}

func TestSearchZeroMatchesIsStillASearch(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db, models.Business{Name: "Joe's Coffee"})

	result, err := engine.Search(context.Background(), Params{Query: "plumbing"})
	require.NoError(t, err)

	assert.True(t, result.Searched)
	assert.Empty(t, result.Businesses)
	assert.EqualValues(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db,
		models.Business{Name: "Joe's Coffee"},
		models.Business{Name: "Bean Scene"},
	)

	result, err := engine.Search(context.Background(), Params{Query: "COFFEE"})
	require.NoError(t, err)

	require.Len(t, result.Businesses, 1)
	assert.Equal(t, "Joe's Coffee", result.Businesses[0].Name)
}

func TestSearchByStateName(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db,
		models.Business{Name: "Joe's Coffee", City: "Portland", State: "OR"},
		models.Business{Name: "Bean Scene", City: "Austin", State: "TX"},
	)

	result, err := engine.Search(context.Background(), Params{Location: "Oregon"})
	require.NoError(t, err)

	require.Len(t, result.Businesses, 1)
	assert.Equal(t, "OR", result.Businesses[0].State)
}

func TestSearchByCityStatePair(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db,
		models.Business{Name: "Joe's Coffee", City: "Portland", State: "OR"},
		models.Business{Name: "Lobster Shack", City: "Portland", State: "ME"},
	)

	result, err := engine.Search(context.Background(), Params{Location: "Portland, Maine"})
	require.NoError(t, err)

	require.Len(t, result.Businesses, 1)
	assert.Equal(t, "ME", result.Businesses[0].State)
}

func TestSearchSortByReviews(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db,
		models.Business{Name: "Cafe A", Category: "Cafe", ReviewCount: 2},
		models.Business{Name: "Cafe B", Category: "Cafe", ReviewCount: 9},
	)

	result, err := engine.Search(context.Background(), Params{
		Category: "Cafe",
		Sort:     "reviews_desc",
	})
	require.NoError(t, err)

	require.Len(t, result.Businesses, 2)
	assert.Equal(t, "Cafe B", result.Businesses[0].Name)
}

func TestSearchPagination(t *testing.T) {
	engine, db := testEngine(t)

	var many []models.Business
	for i := 0; i < PageSize+1; i++ {
		many = append(many, models.Business{
			Name:     fmt.Sprintf("Cafe %02d", i),
			Category: "Cafe",
		})
	}
	seed(t, db, many...)

	first, err := engine.Search(context.Background(), Params{Category: "Cafe", Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Businesses, PageSize)
	assert.EqualValues(t, PageSize+1, first.Total)
	assert.Equal(t, 2, first.TotalPages)

	second, err := engine.Search(context.Background(), Params{Category: "Cafe", Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Businesses, 1)
	assert.Equal(t, 2, second.Page)
}

func TestSearchBumpsAppearanceCounters(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db, models.Business{Name: "Joe's Coffee"})

	_, err := engine.Search(context.Background(), Params{Query: "coffee"})
	require.NoError(t, err)

	var row models.BusinessAnalytics
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, 1, row.SearchAppearances)
	assert.Equal(t, 0, row.ProfileViews)
}

func TestAutocomplete(t *testing.T) {
	engine, db := testEngine(t)
	seed(t, db,
		models.Business{Name: "Joe's Coffee"},
		models.Business{Name: "Coffee Corner"},
		models.Business{Name: "Bean Scene"},
	)

	names, err := engine.Autocomplete(context.Background(), "coff")
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee Corner", "Joe's Coffee"}, names)

	names, err = engine.Autocomplete(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, names)
}
