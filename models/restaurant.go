package models

import "time"

// Restaurant is the tenant root. The slug is the public handle used by the
// menu page and the PDF export. The free-text design fields feed the printed
// page; nil values fall back to render-time defaults.
type Restaurant struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Address        *string   `gorm:"type:varchar(255)" json:"address"`
	Phone          *string   `gorm:"type:varchar(50)" json:"phone"`
	LogoURL        *string   `gorm:"type:varchar(500)" json:"logo_url"`
	OpeningDays    *string   `gorm:"type:varchar(255)" json:"opening_days"`
	OpeningDays2   *string   `gorm:"type:varchar(255)" json:"opening_days_2"`
	LunchHours     *string   `gorm:"type:varchar(100)" json:"lunch_hours"`
	DinnerHours    *string   `gorm:"type:varchar(100)" json:"dinner_hours"`
	HolidayNotice  *string   `gorm:"type:text" json:"holiday_notice"`
	MeatOrigin     *string   `gorm:"type:text" json:"meat_origin"`
	PaymentNotice  *string   `gorm:"type:text" json:"payment_notice"`
	Subtitle       *string   `gorm:"type:varchar(255)" json:"subtitle"`
	RestaurantType *string   `gorm:"type:varchar(100)" json:"restaurant_type"`
	Cities         *string   `gorm:"type:varchar(255)" json:"cities"`
	SidesNote      *string   `gorm:"type:varchar(255)" json:"sides_note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
