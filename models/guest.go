package models

import "time"

// GuestType classifies a guest profile.
type GuestType string

const (
	GuestTypeWalkIn    GuestType = "Walk-in"
	GuestTypeCorporate GuestType = "Corporate"
	GuestTypeVIP       GuestType = "VIP"
	GuestTypeLoyalty   GuestType = "Loyalty"
)

// ValidGuestType reports whether t is a known guest class.
func ValidGuestType(t GuestType) bool {
	switch t {
	case GuestTypeWalkIn, GuestTypeCorporate, GuestTypeVIP, GuestTypeLoyalty:
		return true
	}
	return false
}

// Guest is a hotel guest profile. A guest may be linked to a platform user
// account but does not have to be; walk-ins are created by staff.
type Guest struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Type          GuestType `bson:"type" json:"type"`
	LoyaltyPoints int       `bson:"loyalty_points" json:"loyalty_points"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
