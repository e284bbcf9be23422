package models

import "time"

// DailyMenu is the selection for one restaurant on one calendar date.
// Dates are stored as YYYY-MM-DD strings; (restaurant_id, date) is unique.
// A menu is created lazily the first time a selection is saved, never by
// viewing.
type DailyMenu struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"not null;uniqueIndex:idx_restaurant_date" json:"restaurant_id"`
	Date         string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_restaurant_date" json:"date"`
	IsPublished  bool            `gorm:"not null;default:false" json:"is_published"`
	ShowPrices   bool            `gorm:"not null;default:true" json:"show_prices"`
	Items        []DailyMenuItem `gorm:"foreignKey:DailyMenuID" json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
