package models

import "github.com/shopspring/decimal"

// DailyMenuItem puts one product on one daily menu. DisplayOrder is only
// meaningful within the product's category. CustomPrice overrides the
// product's base price for that day without touching the product row.
type DailyMenuItem struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	DailyMenuID  uint             `gorm:"not null;index" json:"daily_menu_id"`
	ProductID    uint             `gorm:"not null" json:"product_id"`
	Product      Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	DisplayOrder int              `gorm:"not null;default:0" json:"display_order"`
	CustomPrice  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"custom_price"`
}
