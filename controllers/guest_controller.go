package controllers

import (
	"net/http"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateGuestPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

func guestJSON(g models.Guest) gin.H {
	return gin.H{
		"id":         g.ID,
		"first_name": g.FirstName,
		"last_name":  g.LastName,
		"email":      g.Email,
		"phone":      g.Phone,
		"created_at": g.CreatedAt,
	}
}

// POST /users
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var payload CreateGuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and phone are required")
		return
	}

	guest, err := ctrl.Guests.Create(models.Guest{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
	})
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "User created successfully", gin.H{"user": guestJSON(guest)})
}

// GET /users/:id
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guest, err := ctrl.Guests.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, guestJSON(guest))
}

// GET /users/email/:email
func (ctrl *GuestController) GetGuestByEmail(c *gin.Context) {
	guest, err := ctrl.Guests.GetByEmail(c.Param("email"))
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, guestJSON(guest))
}

// GET /users/phone/:phone
func (ctrl *GuestController) GetGuestByPhone(c *gin.Context) {
	guest, err := ctrl.Guests.GetByPhone(c.Param("phone"))
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, guestJSON(guest))
}

// GET /users
func (ctrl *GuestController) GetAllGuests(c *gin.Context) {
	guests, err := ctrl.Guests.GetAll()
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	out := make([]gin.H, 0, len(guests))
	for _, g := range guests {
		out = append(out, guestJSON(g))
	}
	c.JSON(http.StatusOK, gin.H{"total": len(out), "users": out})
}
