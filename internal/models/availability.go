package models

import "time"

// DayAvailability is the recurring opening window of one day of week (0=Sunday).
type DayAvailability struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DayOfWeek int    `gorm:"uniqueIndex;not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	IsOpen    bool   `gorm:"not null" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
}

func (DayAvailability) TableName() string {
	return "availability"
}

type BlockedDate struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Date   Date   `gorm:"uniqueIndex;not null" json:"date"`
	Reason string `gorm:"type:text" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
