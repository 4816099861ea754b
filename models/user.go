package models

import "time"

const (
	RoleOwner  = "owner"
	RoleFinder = "finder"
)

// ValidRole reports whether r is a role a user may sign up with.
// Roles are fixed at signup; there is no role-change operation.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleFinder
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	Password  string    `gorm:"not null" json:"-"` // stored as bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties      []Property       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"properties,omitempty"`
	BookingRequests []BookingRequest `gorm:"foreignKey:FinderID;constraint:OnDelete:CASCADE" json:"booking_requests,omitempty"`
}
