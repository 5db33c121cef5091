package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomWithHotel is a room row decorated with its hotel's display fields.
type RoomWithHotel struct {
	ID            uint    `gorm:"column:id" json:"id"`
	HotelID       uint    `gorm:"column:hotel_id" json:"hotel_id"`
	RoomNumber    string  `gorm:"column:room_number" json:"room_number"`
	RoomType      string  `gorm:"column:room_type" json:"room_type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Capacity      int     `gorm:"column:capacity" json:"capacity"`
	Amenities     string  `gorm:"column:amenities" json:"amenities"`
	Description   string  `gorm:"column:description" json:"description"`
	IsAvailable   bool    `gorm:"column:is_available" json:"is_available"`
	HotelName     string  `gorm:"column:hotel_name" json:"hotel_name"`
	City          string  `gorm:"column:city" json:"city"`
	Country       string  `gorm:"column:country" json:"country"`
	Address       string  `gorm:"column:address" json:"address"`
	Stars         int     `gorm:"column:stars" json:"stars"`
}

const roomWithHotelColumns = "rooms.id, rooms.hotel_id, rooms.room_number, rooms.room_type, " +
	"rooms.price_per_night, rooms.capacity, rooms.amenities, rooms.description, rooms.is_available, " +
	"hotels.name AS hotel_name, hotels.city, hotels.country, hotels.address, hotels.stars"

func (s *RoomService) joined() *gorm.DB {
	return s.DB.Model(&models.Room{}).
		Select(roomWithHotelColumns).
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id")
}

// SearchAvailable returns rooms free for the half-open range
// [checkIn, checkOut). A room qualifies when its availability flag is set,
// its capacity covers the requested minimum, no non-cancelled reservation
// overlaps the range, and (optionally) its hotel's city matches the filter
// as a case-insensitive substring. Overlap uses strict inequalities on both
// ends so a checkout on day X never blocks a check-in on day X.
func (s *RoomService) SearchAvailable(checkIn, checkOut time.Time, capacity int, city string) ([]RoomWithHotel, error) {
	if checkIn.Before(utils.Today()) {
		return nil, validationErr("Check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, validationErr("Check-out date must be after check-in date")
	}
	if capacity < 1 {
		capacity = 1
	}

	// Legacy guest-level reservations carry no room; they must not poison
	// the NOT IN subquery with NULLs.
	booked := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("room_id IS NOT NULL").
		Where("check_in < ? AND check_out > ?", datatypes.Date(checkOut), datatypes.Date(checkIn)).
		Where("status <> ?", models.StatusCancelled)

	q := s.joined().
		Where("rooms.is_available = ?", true).
		Where("rooms.capacity >= ?", capacity).
		Where("rooms.id NOT IN (?)", booked)

	if city != "" {
		q = q.Where("LOWER(hotels.city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}

	var rooms []RoomWithHotel
	if err := q.Order("hotels.city, hotels.name, rooms.room_number").Scan(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, room.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, fmt.Errorf("failed to look up hotel: %w", err)
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, conflictErr(fmt.Sprintf("Room number '%s' already exists for this hotel", room.RoomNumber))
		}
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetAll() ([]RoomWithHotel, error) {
	var rooms []RoomWithHotel
	if err := s.joined().Order("hotels.name, rooms.room_number").Scan(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByHotelID(hotelID uint) ([]RoomWithHotel, error) {
	var rooms []RoomWithHotel
	err := s.joined().
		Where("rooms.hotel_id = ?", hotelID).
		Order("rooms.room_number").
		Scan(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for hotel: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (RoomWithHotel, error) {
	var room RoomWithHotel
	result := s.joined().Where("rooms.id = ?", id).Limit(1).Scan(&room)
	if result.Error != nil {
		return RoomWithHotel{}, fmt.Errorf("failed to get room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return RoomWithHotel{}, ErrNotFound
	}
	return room, nil
}

func (s *RoomService) Update(room models.Room) (RoomWithHotel, error) {
	if _, err := s.GetByID(room.ID); err != nil {
		return RoomWithHotel{}, err
	}
	updates := map[string]interface{}{
		"room_number":     room.RoomNumber,
		"room_type":       room.RoomType,
		"price_per_night": room.PricePerNight,
		"capacity":        room.Capacity,
		"amenities":       room.Amenities,
		"description":     room.Description,
		"is_available":    room.IsAvailable,
	}
	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return RoomWithHotel{}, conflictErr(fmt.Sprintf("Room number '%s' already exists for this hotel", room.RoomNumber))
		}
		return RoomWithHotel{}, fmt.Errorf("failed to update room: %w", err)
	}
	return s.GetByID(room.ID)
}

func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
