package review

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/models"
)

// Aggregator owns review writes and the derived rating aggregates. A user
// gets at most one review per business; resubmitting replaces it in place.
type Aggregator struct {
	db *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Upsert writes the (user, business) review as one conditional statement:
// the unique index turns a duplicate insert into an update of rating and
// comment, so two concurrent submissions can't create two rows.
func (a *Aggregator) Upsert(
	ctx context.Context,
	userID uint,
	businessID uint,
	rating int,
	comment string,
) (*models.Review, error) {

	if rating < 1 || rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	var business models.Business
	if err := a.db.WithContext(ctx).First(&business, businessID).Error; err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	rv := models.Review{
		UserID:     userID,
		BusinessID: businessID,
		Rating:     rating,
		Comment:    comment,
	}

	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "business_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"rating":     rating,
				"comment":    comment,
				"updated_at": time.Now(),
			}),
		}).
		Create(&rv).Error
	if err != nil {
		return nil, err
	}

	if err := a.refreshReviewCount(ctx, businessID); err != nil {
		return nil, err
	}

	var saved models.Review
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		First(&saved).Error; err != nil {
		return nil, err
	}

	return &saved, nil
}

func (a *Aggregator) refreshReviewCount(ctx context.Context, businessID uint) error {
	var count int64
	if err := a.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return err
	}

	return a.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", businessID).
		Update("review_count", count).Error
}

// ======================================================
// AGGREGATES
// ======================================================

type Summary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// Summary returns the mean rating rounded to one decimal and the review
// count. A business with no reviews averages exactly 0.
func (a *Aggregator) Summary(ctx context.Context, businessID uint) (Summary, error) {
	var row struct {
		Avg   *float64
		Count int64
	}

	if err := a.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Scan(&row).Error; err != nil {
		return Summary{}, err
	}

	s := Summary{Count: row.Count}
	if row.Avg != nil {
		s.Average = math.Round(*row.Avg*10) / 10
	}
	return s, nil
}

// List returns all reviews for a business, newest first.
func (a *Aggregator) List(ctx context.Context, businessID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := a.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("updated_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
