package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomPayload struct {
	HotelID       uint    `json:"hotel_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Amenities     string  `json:"amenities"`
	Description   string  `json:"description"`
	IsAvailable   *bool   `json:"is_available"`
}

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /rooms/search?check_in=&check_out=&capacity=&city=
func (ctrl *RoomController) SearchAvailableRooms(c *gin.Context) {
	checkInRaw := c.Query("check_in")
	checkOutRaw := c.Query("check_out")
	if checkInRaw == "" || checkOutRaw == "" {
		utils.JSONError(c, http.StatusBadRequest, "Check-in and check-out dates are required")
		return
	}

	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-out date")
		return
	}

	capacity := 1
	if raw := c.Query("capacity"); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil || capacity < 1 {
			utils.JSONError(c, http.StatusBadRequest, "Capacity must be a positive number")
			return
		}
	}
	city := c.Query("city")

	rooms, err := ctrl.Rooms.SearchAvailable(checkIn, checkOut, capacity, city)
	if err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}

	cityLabel := city
	if cityLabel == "" {
		cityLabel = "Any city"
	}
	utils.JSONMessage(c, http.StatusOK, "Found "+strconv.Itoa(len(rooms))+" available room(s)", gin.H{
		"rooms": rooms,
		"search_criteria": gin.H{
			"check_in":  checkInRaw,
			"check_out": checkOutRaw,
			"capacity":  capacity,
			"city":      cityLabel,
		},
	})
}

// POST /rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.HotelID == 0 || payload.RoomNumber == "" || payload.RoomType == "" ||
		payload.PricePerNight == 0 || payload.Capacity == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Hotel ID, room number, room type, price per night, and capacity are required")
		return
	}
	if payload.PricePerNight <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price per night must be greater than 0")
		return
	}
	if payload.Capacity <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Capacity must be greater than 0")
		return
	}

	room := models.Room{
		HotelID:       payload.HotelID,
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
		Amenities:     payload.Amenities,
		Description:   payload.Description,
		IsAvailable:   true,
	}
	created, err := ctrl.Rooms.Create(room)
	if err != nil {
		respondServiceError(c, err, "Hotel not found")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Room created successfully", gin.H{"room": created})
}

// GET /rooms
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GET /rooms/hotel/:hotel_id
func (ctrl *RoomController) GetRoomsByHotelID(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotel_id")
	if !ok {
		return
	}
	rooms, err := ctrl.Rooms.GetByHotelID(hotelID)
	if err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GET /rooms/:id
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// PUT /rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.PricePerNight <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Price per night must be greater than 0")
		return
	}
	if payload.Capacity <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Capacity must be greater than 0")
		return
	}

	available := true
	if payload.IsAvailable != nil {
		available = *payload.IsAvailable
	}
	room := models.Room{
		ID:            id,
		RoomNumber:    payload.RoomNumber,
		RoomType:      payload.RoomType,
		PricePerNight: payload.PricePerNight,
		Capacity:      payload.Capacity,
		Amenities:     payload.Amenities,
		Description:   payload.Description,
		IsAvailable:   available,
	}
	updated, err := ctrl.Rooms.Update(room)
	if err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Room updated successfully", gin.H{"room": updated})
}

// DELETE /rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Rooms.Delete(id); err != nil {
		respondServiceError(c, err, "Room not found")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully", gin.H{})
}
