package services

import (
	"fmt"
	"testing"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Hotel{}, &models.Room{}, &models.Guest{}, &models.Reservation{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustHotel(t *testing.T, db *gorm.DB, name, city string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		Name: name, Address: "1 Test Street", City: city, Country: "Testland",
		Phone: "000", Email: name + "@example.com", Stars: 3,
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return hotel
}

func mustRoom(t *testing.T, db *gorm.DB, hotelID uint, number string, capacity int, available bool) models.Room {
	t.Helper()
	room := models.Room{
		HotelID: hotelID, RoomNumber: number, RoomType: "Standard",
		PricePerNight: 100, Capacity: capacity, IsAvailable: available,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return room
}

func mustGuest(t *testing.T, db *gorm.DB, email, phone string) models.Guest {
	t.Helper()
	guest := models.Guest{Email: email, Phone: phone}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	return guest
}

func mustReservation(t *testing.T, db *gorm.DB, guestID uint, roomID *uint, checkIn, checkOut time.Time, status string) models.Reservation {
	t.Helper()
	reservation := models.Reservation{
		ID:       uuid.NewString(),
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  datatypes.Date(checkIn),
		CheckOut: datatypes.Date(checkOut),
		Type:     models.TypeDaily,
		Status:   status,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return reservation
}

// futureDate returns today + days, safely beyond any past-date check.
func futureDate(days int) time.Time {
	return utils.Today().AddDate(0, 0, 30+days)
}
