package models

import "time"

const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingDeclined = "declined"
)

// BookingRequest is a finder's expressed interest in a property. Only the
// property's owner may move it out of pending.
type BookingRequest struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	FinderID   uint     `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"finder_id"`
	Finder     User     `gorm:"foreignKey:FinderID" json:"finder,omitempty"`
	PropertyID uint     `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"property_id"`
	Property   Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`

	Message   string    `gorm:"type:text" json:"message,omitempty"`
	Status    string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
