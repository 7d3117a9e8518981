package models

import "time"

type GalleryImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	StorageKey   string `gorm:"size:255;not null" json:"-"`
	ImageURL     string `gorm:"type:text;not null" json:"image_url"`
	Caption      string `gorm:"size:255" json:"caption"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}
