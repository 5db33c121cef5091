package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route table the frontend
// consumes.
func SetupRouter(
	rc *controllers.ReservationController,
	roomCtrl *controllers.RoomController,
	hc *controllers.HotelController,
	gc *controllers.GuestController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reservations := r.Group("/reservations")
	{
		reservations.POST("", rc.CreateReservation)
		reservations.GET("/search", rc.SearchReservations)
		reservations.GET("", rc.GetAllReservations)
		reservations.GET("/:id", rc.GetReservationByID)
		reservations.PUT("/:id", rc.UpdateReservation)
		reservations.DELETE("/:id", rc.DeleteReservation)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", roomCtrl.CreateRoom)
		rooms.GET("", roomCtrl.GetAllRooms)
		rooms.GET("/search", roomCtrl.SearchAvailableRooms)
		rooms.GET("/hotel/:hotel_id", roomCtrl.GetRoomsByHotelID)
		rooms.GET("/:id", roomCtrl.GetRoomByID)
		rooms.PUT("/:id", roomCtrl.UpdateRoom)
		rooms.DELETE("/:id", roomCtrl.DeleteRoom)
	}

	hotels := r.Group("/hotels")
	{
		hotels.POST("", hc.CreateHotel)
		hotels.GET("", hc.GetAllHotels)
		hotels.GET("/search", hc.SearchHotels)
		hotels.GET("/:id", hc.GetHotelByID)
		hotels.PUT("/:id", hc.UpdateHotel)
		hotels.DELETE("/:id", hc.DeleteHotel)
	}

	users := r.Group("/users")
	{
		users.POST("", gc.CreateGuest)
		users.GET("", gc.GetAllGuests)
		users.GET("/:id", gc.GetGuestByID)
		users.GET("/email/:email", gc.GetGuestByEmail)
		users.GET("/phone/:phone", gc.GetGuestByPhone)
	}

	return r
}
