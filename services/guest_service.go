package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

// GuestService owns guest identity: the booking path resolves an (email,
// phone) pair to exactly one guest, creating it on first contact.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// ResolveOrCreate maps an (email, phone) pair to exactly one guest. A guest
// found by email must carry the same phone; a phone already bound to a
// different email is a conflict. Otherwise a new guest is created. At most
// one insert per call, never an update.
func (s *GuestService) ResolveOrCreate(email, phone string) (models.Guest, error) {
	var guest models.Guest

	err := s.DB.Where("email = ?", email).First(&guest).Error
	if err == nil {
		if guest.Phone != phone {
			return models.Guest{}, conflictErr("Phone number does not match the email address on file")
		}
		return guest, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Guest{}, fmt.Errorf("failed to look up guest by email: %w", err)
	}

	err = s.DB.Where("phone = ?", phone).First(&guest).Error
	if err == nil {
		return models.Guest{}, conflictErr("Phone number is already associated with a different email address")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Guest{}, fmt.Errorf("failed to look up guest by phone: %w", err)
	}

	guest = models.Guest{Email: email, Phone: phone}
	if err := s.DB.Create(&guest).Error; err != nil {
		// A concurrent request can win the insert race between the lookups
		// above and this create; the unique indexes on email and phone
		// reject the loser and that rejection is still an identity conflict.
		if isDuplicateKey(err) {
			return models.Guest{}, conflictErr("Email or phone number is already associated with another guest")
		}
		return models.Guest{}, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

// Create registers a guest explicitly, rejecting any reuse of email or phone.
func (s *GuestService) Create(guest models.Guest) (models.Guest, error) {
	guest.Email = strings.TrimSpace(guest.Email)
	guest.Phone = strings.TrimSpace(guest.Phone)
	if guest.Email == "" || guest.Phone == "" {
		return models.Guest{}, validationErr("Email and phone are required")
	}

	var existing models.Guest
	if err := s.DB.Where("email = ?", guest.Email).First(&existing).Error; err == nil {
		return models.Guest{}, conflictErr("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Guest{}, fmt.Errorf("failed to look up guest by email: %w", err)
	}
	if err := s.DB.Where("phone = ?", guest.Phone).First(&existing).Error; err == nil {
		return models.Guest{}, conflictErr("User with this phone number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Guest{}, fmt.Errorf("failed to look up guest by phone: %w", err)
	}

	if err := s.DB.Create(&guest).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Guest{}, conflictErr("Email or phone number is already associated with another guest")
		}
		return models.Guest{}, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, fmt.Errorf("failed to get guest: %w", err)
	}
	return guest, nil
}

func (s *GuestService) GetByEmail(email string) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Where("email = ?", email).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, fmt.Errorf("failed to get guest by email: %w", err)
	}
	return guest, nil
}

func (s *GuestService) GetByPhone(phone string) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Where("phone = ?", phone).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, fmt.Errorf("failed to get guest by phone: %w", err)
	}
	return guest, nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}
