package models

import "time"

// Invite is a single-use collaborator token scoped to a restaurant and a
// role. Consuming it links the accepting user to the restaurant.
type Invite struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Token        string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	Role         string     `gorm:"type:varchar(50);not null" json:"role"`
	Email        string     `gorm:"type:varchar(255);not null" json:"email"`
	UsedAt       *time.Time `json:"used_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
