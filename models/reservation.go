package models

import (
	"time"

	"gorm.io/datatypes"
)

// Reservation statuses. Only "confirmed" is reachable from creation today;
// "cancelled" and "completed" are valid stored values that the availability
// search respects.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Stay types classify the billing cadence of a reservation.
const (
	TypeDaily   = "daily"
	TypeWeekly  = "weekly"
	TypeMonthly = "monthly"
)

// ValidType reports whether t is an accepted stay type.
func ValidType(t string) bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	}
	return false
}

// Reservation books a room (or, in the legacy shape, a guest-level stay with
// no room) for a half-open date range [check_in, check_out).
type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	GuestID uint  `gorm:"column:guest_id;not null;index" json:"guest_id"`
	RoomID  *uint `gorm:"column:room_id;index" json:"room_id,omitempty"`
	HotelID *uint `gorm:"column:hotel_id;index" json:"hotel_id,omitempty"`

	CheckIn  datatypes.Date `gorm:"column:check_in;not null" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out;not null" json:"check_out"`

	Type   string `gorm:"size:16;not null" json:"type"`
	Status string `gorm:"size:16;not null;default:confirmed" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	Guest Guest  `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Hotel *Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
}
