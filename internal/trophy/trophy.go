package trophy

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localate/localate/internal/httperr"
	"github.com/localate/localate/internal/models"
)

// Service manages the one-per-user trophy vote and the cached per-business
// trophy count used for popularity ranking.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Toggle flips the user's trophy for a business. Returns the state after
// the toggle: true when the trophy is now awarded.
func (s *Service) Toggle(
	ctx context.Context,
	userID uint,
	businessID uint,
) (bool, error) {

	var business models.Business
	if err := s.db.WithContext(ctx).First(&business, businessID).Error; err != nil {
		return false, httperr.ErrBusiness("business_not_found")
	}

	awarded := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("business_id = ? AND user_id = ?", businessID, userID).
			Delete(&models.Trophy{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// nothing to remove: award one. The unique index absorbs a
			// concurrent duplicate award.
			create := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Trophy{BusinessID: businessID, UserID: userID})
			if create.Error != nil {
				return create.Error
			}
			awarded = true
		}

		var count int64
		if err := tx.
			Model(&models.Trophy{}).
			Where("business_id = ?", businessID).
			Count(&count).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Business{}).
			Where("id = ?", businessID).
			Update("trophies", count).Error
	})
	if err != nil {
		return false, err
	}

	return awarded, nil
}

// Leaderboard lists the most-awarded businesses, trophies first and cached
// review count as the tiebreaker.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]models.Business, error) {
	if limit <= 0 {
		limit = 10
	}

	var businesses []models.Business
	if err := s.db.WithContext(ctx).
		Order("trophies DESC").
		Order("review_count DESC").
		Limit(limit).
		Find(&businesses).Error; err != nil {
		return nil, err
	}

	return businesses, nil
}
