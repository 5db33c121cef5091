package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelPayload struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
}

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{Hotels: svc}
}

func validateHotelPayload(c *gin.Context, payload *HotelPayload) bool {
	if payload.Name == "" || payload.Address == "" || payload.City == "" ||
		payload.Country == "" || payload.Phone == "" || payload.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name, address, city, country, phone, and email are required")
		return false
	}
	if payload.Stars != 0 && (payload.Stars < 1 || payload.Stars > 5) {
		utils.JSONError(c, http.StatusBadRequest, "Stars rating must be between 1 and 5")
		return false
	}
	if payload.Stars == 0 {
		payload.Stars = 3
	}
	return true
}

// POST /hotels
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if !validateHotelPayload(c, &payload) {
		return
	}

	hotel, err := ctrl.Hotels.Create(models.Hotel{
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		Country:     payload.Country,
		Phone:       payload.Phone,
		Email:       payload.Email,
		Stars:       payload.Stars,
		Description: payload.Description,
	})
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Hotel created successfully", gin.H{"hotel": hotel})
}

// GET /hotels
func (ctrl *HotelController) GetAllHotels(c *gin.Context) {
	hotels, err := ctrl.Hotels.GetAll()
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GET /hotels/search?query=
func (ctrl *HotelController) SearchHotels(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Search query is required")
		return
	}
	hotels, err := ctrl.Hotels.Search(query)
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Found "+strconv.Itoa(len(hotels))+" hotel(s)", gin.H{"hotels": hotels})
}

// GET /hotels/:id
func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := ctrl.Hotels.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// PUT /hotels/:id
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if !validateHotelPayload(c, &payload) {
		return
	}

	hotel, err := ctrl.Hotels.Update(models.Hotel{
		ID:          id,
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		Country:     payload.Country,
		Phone:       payload.Phone,
		Email:       payload.Email,
		Stars:       payload.Stars,
		Description: payload.Description,
	})
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Hotel updated successfully", gin.H{"hotel": hotel})
}

// DELETE /hotels/:id
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Hotels.Delete(id); err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hotel deleted successfully", gin.H{})
}
