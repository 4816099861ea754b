package models

import "time"

// PropertyImage is one entry in a listing's gallery. At most one image per
// property carries IsPrimary; the image controller demotes the previous
// primary inside the same transaction that promotes a new one.
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property_id"`
	ImageURL   string    `gorm:"not null" json:"image_url"`
	IsPrimary  bool      `gorm:"default:false;index" json:"is_primary"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
