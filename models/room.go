package models

import (
	"time"
)

// Room is a bookable unit belonging to a hotel. The (hotel_id, room_number)
// pair is unique. IsAvailable is a manual toggle set by hotel management and
// is independent of reservation overlap.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID uint `gorm:"column:hotel_id;not null;uniqueIndex:idx_rooms_hotel_number" json:"hotel_id"`

	RoomNumber    string  `gorm:"column:room_number;size:10;not null;uniqueIndex:idx_rooms_hotel_number" json:"room_number"`
	RoomType      string  `gorm:"column:room_type;size:50;not null" json:"room_type"`
	PricePerNight float64 `gorm:"column:price_per_night;not null" json:"price_per_night"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	Amenities     string  `gorm:"type:text" json:"amenities"`
	Description   string  `gorm:"type:text" json:"description"`
	IsAvailable   bool    `gorm:"column:is_available;default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`

	Hotel Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
}
