package models

import (
	"time"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Address     string `gorm:"type:text;not null" json:"address"`
	City        string `gorm:"size:100;not null;index" json:"city"`
	Country     string `gorm:"size:100;not null" json:"country"`
	Phone       string `gorm:"size:20;not null" json:"phone"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Stars       int    `gorm:"default:3" json:"stars"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
