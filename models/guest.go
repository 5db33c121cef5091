package models

import (
	"time"
)

// Guest identifies a person who can hold reservations. Email and phone are
// each unique across all guests; the unique indexes back the identity
// resolver's conflict detection under concurrent creation.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FirstName string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name"`
	Email     string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string `gorm:"size:20;not null;uniqueIndex" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
