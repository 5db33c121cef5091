package services

import (
	"errors"
	"fmt"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Create(hotel models.Hotel) (models.Hotel, error) {
	if err := s.DB.Create(&hotel).Error; err != nil {
		return models.Hotel{}, fmt.Errorf("failed to create hotel: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, ErrNotFound
		}
		return models.Hotel{}, fmt.Errorf("failed to get hotel: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) Update(hotel models.Hotel) (models.Hotel, error) {
	if _, err := s.GetByID(hotel.ID); err != nil {
		return models.Hotel{}, err
	}
	updates := map[string]interface{}{
		"name":        hotel.Name,
		"address":     hotel.Address,
		"city":        hotel.City,
		"country":     hotel.Country,
		"phone":       hotel.Phone,
		"email":       hotel.Email,
		"stars":       hotel.Stars,
		"description": hotel.Description,
	}
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Updates(updates).Error; err != nil {
		return models.Hotel{}, fmt.Errorf("failed to update hotel: %w", err)
	}
	return s.GetByID(hotel.ID)
}

// Delete removes a hotel. Its rooms and their reservations go with it via
// the cascading foreign keys.
func (s *HotelService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Hotel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return nil
}

// Search matches a free-text query against name, city, country and address.
func (s *HotelService) Search(query string) ([]models.Hotel, error) {
	like := "%" + query + "%"
	var hotels []models.Hotel
	err := s.DB.
		Where("name LIKE ? OR city LIKE ? OR country LIKE ? OR address LIKE ?", like, like, like, like).
		Order("name").
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}
