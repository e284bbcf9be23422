package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price units. PER_PERSON is a label only, no arithmetic is applied.
const (
	PriceUnitFixed     = "FIXED"
	PriceUnitPerPerson = "PER_PERSON"
)

// Product belongs to one restaurant and optionally one category. A nil
// category renders under the "Autres" bucket; a nil price means "price on
// request" and suppresses the price cell.
type Product struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	RestaurantID uint             `gorm:"not null;index" json:"restaurant_id"`
	CategoryID   *uint            `gorm:"index" json:"category_id"`
	Category     *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Name         string           `gorm:"type:varchar(255);not null" json:"name"`
	Description  *string          `gorm:"type:text" json:"description"`
	Price        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	PriceUnit    string           `gorm:"type:varchar(20);not null;default:FIXED" json:"price_unit"`
	IsActive     bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
