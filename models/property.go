package models

import "time"

// House types accepted for a listing.
const (
	HouseTypeStudio = "Studio"
	HouseType1BHK   = "1BHK"
	HouseType2BHK   = "2BHK"
	HouseType3BHK   = "3BHK"
	HouseType4BHK   = "4BHK"
	HouseTypeVilla  = "Villa"
)

var houseTypes = map[string]bool{
	HouseTypeStudio: true,
	HouseType1BHK:   true,
	HouseType2BHK:   true,
	HouseType3BHK:   true,
	HouseType4BHK:   true,
	HouseTypeVilla:  true,
}

func ValidHouseType(t string) bool {
	return houseTypes[t]
}

// Property is a rental listing. Deletes are hard deletes: once an owner
// removes a listing it is gone, along with its gallery images.
type Property struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Title            string   `gorm:"not null" json:"title"`
	Description      string   `gorm:"type:text" json:"description,omitempty"`
	Address          string   `gorm:"not null" json:"address"`
	HouseType        string   `gorm:"type:varchar(20);not null" json:"house_type"`
	Bedrooms         int      `gorm:"not null" json:"bedrooms"`
	RentPerMonth     float64  `gorm:"type:decimal(10,2);not null" json:"rent_per_month"`
	HasWaterFacility bool     `gorm:"default:false" json:"has_water_facility"`
	MeterType        string   `gorm:"size:50" json:"meter_type,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`

	// Default true is applied in the handler, not by a column default, so an
	// owner can create a listing that starts out unavailable.
	IsAvailable bool `gorm:"not null;index" json:"is_available"`

	// Cover image. Null when the listing was created without an upload.
	ImageURL *string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}
