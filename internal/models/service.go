package models

import "time"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	DurationMinutes int `gorm:"not null;default:30" json:"duration_minutes"`
	// Price in cents, nil when the service has no listed price.
	Price *int `json:"price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
