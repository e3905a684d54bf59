package search

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/localate/localate/internal/analytics"
	"github.com/localate/localate/internal/geo"
	"github.com/localate/localate/internal/models"
)

const PageSize = 10

type Params struct {
	Query    string
	Category string
	Location string
	Sort     string // "reviews_asc" | "reviews_desc" | ""
	Page     int
}

// Result distinguishes "nothing searched yet" (Searched false) from a
// search that matched zero rows (Searched true, empty Businesses).
type Result struct {
	Searched   bool              `json:"searched"`
	Businesses []models.Business `json:"businesses"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type Engine struct {
	db      *gorm.DB
	counter *analytics.Counter
}

func NewEngine(db *gorm.DB, counter *analytics.Counter) *Engine {
	return &Engine{db: db, counter: counter}
}

// Search filters businesses by free text, category and location, pages the
// result and optionally orders by review count. Every business on the
// returned page gets a best-effort search-appearance bump.
func (e *Engine) Search(ctx context.Context, p Params) (Result, error) {
	query := strings.TrimSpace(p.Query)
	category := strings.TrimSpace(p.Category)
	location := strings.TrimSpace(p.Location)

	if query == "" && category == "" && location == "" {
		return Result{Searched: false, Businesses: []models.Business{}}, nil
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	q := e.db.WithContext(ctx).Model(&models.Business{})

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if location != "" {
		q = applyLocation(q, location)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Result{}, err
	}

	switch p.Sort {
	case "reviews_asc":
		q = q.Order("review_count ASC")
	case "reviews_desc":
		q = q.Order("review_count DESC")
	}

	var businesses []models.Business
	if err := q.
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&businesses).Error; err != nil {
		return Result{}, err
	}
	if businesses == nil {
		businesses = []models.Business{}
	}

	for _, b := range businesses {
		e.counter.Bump(ctx, b.ID, analytics.MetricSearchAppearances)
	}

	return Result{
		Searched:   true,
		Businesses: businesses,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total),
	}, nil
}

// applyLocation handles "city, state" pairs and single tokens. A single
// token that names a US state filters on its abbreviation; anything else is
// a city substring match.
func applyLocation(q *gorm.DB, location string) *gorm.DB {
	if city, state, ok := strings.Cut(location, ","); ok {
		city = strings.TrimSpace(city)
		state = strings.TrimSpace(state)
		if abbrev, known := geo.StateAbbrev(state); known {
			state = abbrev
		}
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
		if state != "" {
			q = q.Where("state = ?", strings.ToUpper(state))
		}
		return q
	}

	if abbrev, known := geo.StateAbbrev(location); known {
		return q.Where("state = ?", abbrev)
	}

	return q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(location)+"%")
}

func totalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + PageSize - 1) / PageSize)
}

// Autocomplete returns up to 10 business names matching the partial query.
func (e *Engine) Autocomplete(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(strings.ToLower(partial))
	if partial == "" {
		return []string{}, nil
	}

	var names []string
	if err := e.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("LOWER(name) LIKE ?", "%"+partial+"%").
		Order("name ASC").
		Limit(10).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}
