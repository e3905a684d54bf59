package models

// BusinessAnalytics holds one row of per-day counters per business.
type BusinessAnalytics struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint   `gorm:"uniqueIndex:idx_analytics_business_date" json:"business_id"`
	Date       string `gorm:"size:10;uniqueIndex:idx_analytics_business_date" json:"date"`

	ProfileViews      int `gorm:"default:0" json:"profile_views"`
	SearchAppearances int `gorm:"default:0" json:"search_appearances"`
}

func (BusinessAnalytics) TableName() string {
	return "business_analytics"
}
