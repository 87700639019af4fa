package routes

import (
	"net/http"
	"time"

	"hospitality/database/repository/user"
	"hospitality/handlers"
	"hospitality/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the endpoint handlers for route registration.
type Handlers struct {
	UserRepo userRepo.UserRepository

	Rooms        *handlers.RoomHandler
	Availability *handlers.AvailabilityHandler
	Reservations *handlers.ReservationHandler
	Guests       *handlers.GuestHandler
	Stats        *handlers.StatsHandler
	Users        *handlers.UserHandler
	Concierge    *handlers.ConciergeHandler
}

// Register wires every endpoint onto the router.
func Register(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	registerHealthRoute(r)
	registerAuthRoutes(r, h)
	registerRoomRoutes(r, h)
	registerReservationRoutes(r, h)
	registerGuestRoutes(r, h)
	registerConciergeRoutes(r, h)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", h.Users.Register)
		api.POST("/verify", h.Users.VerifyOTP)
		api.POST("/signin", h.Users.SignIn)

		api.Use(middleware.JWTAuthMiddleware(h.UserRepo))
		api.GET("/me", h.Users.Me)
	}
}

func registerRoomRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/rooms")
	{
		api.GET("", h.Rooms.ListRooms)
		api.GET("/:id", h.Rooms.GetRoom)

		// Inventory mutations require a signed-in staff account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(h.UserRepo))
		protected.POST("/seed", h.Rooms.SeedInventory)
		protected.PATCH("/:id/status", h.Rooms.UpdateRoomStatus)
	}

	r.GET("/api/availability", h.Availability.Query)
	r.GET("/api/stats/rooms", h.Stats.RoomStats)
}

func registerReservationRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/reservations")
	api.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	{
		api.POST("", h.Reservations.CreateReservation)
		api.GET("", h.Reservations.ListReservations)
		api.GET("/checkouts", h.Reservations.ListCheckouts)
		api.GET("/:id", h.Reservations.GetReservation)
		api.POST("/:id/checkin", h.Reservations.CheckIn)
		api.POST("/:id/checkout", h.Reservations.CheckOut)
		api.POST("/:id/cancel", h.Reservations.Cancel)
	}
}

func registerGuestRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/guests")
	api.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	{
		api.POST("", h.Guests.RegisterGuest)
		api.GET("", h.Guests.ListGuests)
		api.GET("/:id", h.Guests.GetGuest)
	}
}

func registerConciergeRoutes(r *gin.Engine, h *Handlers) {
	r.POST("/api/ai/chat", h.Concierge.Chat)
}
