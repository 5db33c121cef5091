package controllers

import (
	"net/http"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReservationPayload struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Type     string `json:"type"`
}

type UpdateReservationPayload struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Type     string `json:"type"`
}

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: svc}
}

// reservationJSON is the wire shape the frontend consumes: the guest is
// nested under "user", dates are calendar dates.
func reservationJSON(r models.Reservation) gin.H {
	return gin.H{
		"id": r.ID,
		"user": gin.H{
			"email": r.Guest.Email,
			"phone": r.Guest.Phone,
		},
		"check_in":   utils.FormatDate(time.Time(r.CheckIn)),
		"check_out":  utils.FormatDate(time.Time(r.CheckOut)),
		"type":       r.Type,
		"status":     r.Status,
		"created_at": r.CreatedAt,
	}
}

func reservationListJSON(list []models.Reservation) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, r := range list {
		out = append(out, reservationJSON(r))
	}
	return out
}

// POST /reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload CreateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email, phone, check-in date, check-out date, and type are required")
		return
	}

	reservation, err := ctrl.Reservations.Create(services.CreateReservationInput{
		Email:    payload.Email,
		Phone:    payload.Phone,
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		Type:     payload.Type,
	})
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Reservation created successfully", gin.H{
		"reservation": reservationJSON(reservation),
	})
}

// GET /reservations/search?query=
func (ctrl *ReservationController) SearchReservations(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	reservations, err := ctrl.Reservations.Search(query)
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":        query,
		"results":      len(reservations),
		"reservations": reservationListJSON(reservations),
	})
}

// GET /reservations/:id
func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := ctrl.Reservations.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservationJSON(reservation)})
}

// GET /reservations
func (ctrl *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := ctrl.Reservations.GetAll()
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":        len(reservations),
		"reservations": reservationListJSON(reservations),
	})
}

// PUT /reservations/:id
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	var payload UpdateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Check-in date, check-out date, and type are required")
		return
	}

	reservation, err := ctrl.Reservations.Update(c.Param("id"), services.UpdateReservationInput{
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		Type:     payload.Type,
	})
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Reservation updated successfully", gin.H{
		"reservation": reservationJSON(reservation),
	})
}

// DELETE /reservations/:id
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	reservation, err := ctrl.Reservations.Delete(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Reservation not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Reservation deleted successfully", gin.H{
		"reservation": reservationJSON(reservation),
	})
}
