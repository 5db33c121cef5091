package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationService is the reservation lifecycle manager. Create resolves
// the guest identity first, then persists; update and delete operate on the
// stored record alone.
type ReservationService struct {
	DB     *gorm.DB
	Guests *GuestService
}

func NewReservationService(db *gorm.DB, guests *GuestService) *ReservationService {
	return &ReservationService{DB: db, Guests: guests}
}

type CreateReservationInput struct {
	Email    string
	Phone    string
	CheckIn  string
	CheckOut string
	Type     string
}

type UpdateReservationInput struct {
	CheckIn  string
	CheckOut string
	Type     string
}

func (s *ReservationService) Create(in CreateReservationInput) (models.Reservation, error) {
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if email == "" || phone == "" || strings.TrimSpace(in.CheckIn) == "" ||
		strings.TrimSpace(in.CheckOut) == "" || strings.TrimSpace(in.Type) == "" {
		return models.Reservation{}, validationErr("Email, phone, check-in date, check-out date, and type are required")
	}
	if !models.ValidType(in.Type) {
		return models.Reservation{}, validationErr("Type must be one of: daily, weekly, monthly")
	}

	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Reservation{}, validationErr("Invalid check-in date")
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Reservation{}, validationErr("Invalid check-out date")
	}
	if checkIn.Before(utils.Today()) {
		return models.Reservation{}, validationErr("Check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return models.Reservation{}, validationErr("Check-out date must be after check-in date")
	}

	guest, err := s.Guests.ResolveOrCreate(email, phone)
	if err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		ID:       uuid.NewString(),
		GuestID:  guest.ID,
		CheckIn:  datatypes.Date(checkIn),
		CheckOut: datatypes.Date(checkOut),
		Type:     in.Type,
		Status:   models.StatusConfirmed,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}
	reservation.Guest = guest
	return reservation, nil
}

// Update overwrites dates and type, leaving guest, room and status untouched.
// Unlike create it performs no past-date check on the new check-in.
func (s *ReservationService) Update(id string, in UpdateReservationInput) (models.Reservation, error) {
	if strings.TrimSpace(in.CheckIn) == "" || strings.TrimSpace(in.CheckOut) == "" ||
		strings.TrimSpace(in.Type) == "" {
		return models.Reservation{}, validationErr("Check-in date, check-out date, and type are required")
	}
	if !models.ValidType(in.Type) {
		return models.Reservation{}, validationErr("Type must be one of: daily, weekly, monthly")
	}

	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Reservation{}, validationErr("Invalid check-in date")
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Reservation{}, validationErr("Invalid check-out date")
	}
	if !checkOut.After(checkIn) {
		return models.Reservation{}, validationErr("Check-out date must be after check-in date")
	}

	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	updates := map[string]interface{}{
		"check_in":  datatypes.Date(checkIn),
		"check_out": datatypes.Date(checkOut),
		"type":      in.Type,
	}
	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}

	reservation.CheckIn = datatypes.Date(checkIn)
	reservation.CheckOut = datatypes.Date(checkOut)
	reservation.Type = in.Type
	return reservation, nil
}

// Delete permanently removes the reservation and returns the pre-delete
// snapshot. Availability is computed live from overlap at search time, so
// there is no counter to restore here.
func (s *ReservationService) Delete(id string) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.DB.Delete(&models.Reservation{}, "id = ?", id).Error; err != nil {
		return models.Reservation{}, fmt.Errorf("failed to delete reservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) GetByID(id string) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Guest").First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrNotFound
		}
		return models.Reservation{}, fmt.Errorf("failed to get reservation: %w", err)
	}
	return reservation, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Guest").Order("created_at DESC").Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// Search matches a free-text query against guest phone, email, first/last
// name and the concatenated full name (substring), and against reservation
// id and check-in/check-out dates (exact). Newest reservations first.
func (s *ReservationService) Search(query string) ([]models.Reservation, error) {
	like := "%" + query + "%"
	cond := s.DB.
		Where("guests.phone LIKE ?", like).
		Or("guests.email LIKE ?", like).
		Or("reservations.id = ?", query).
		Or("guests.first_name LIKE ?", like).
		Or("guests.last_name LIKE ?", like).
		// CONCAT works on both adapters; || is logical OR under MySQL's
		// default sql_mode.
		Or("CONCAT(guests.first_name, ' ', guests.last_name) LIKE ?", like)
	if d, err := utils.ParseDate(query); err == nil {
		cond = cond.
			Or("reservations.check_in = ?", datatypes.Date(d)).
			Or("reservations.check_out = ?", datatypes.Date(d))
	}

	var reservations []models.Reservation
	err := s.DB.Model(&models.Reservation{}).
		Joins("JOIN guests ON guests.id = reservations.guest_id").
		Where(cond).
		Order("reservations.created_at DESC").
		Preload("Guest").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search reservations: %w", err)
	}
	return reservations, nil
}
