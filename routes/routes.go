package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"staybook/handlers"
	"staybook/middleware"
	"staybook/utils"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterRoomRoutes registers room catalog endpoints. Browsing is public;
// catalog changes require authentication.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Rooms.SearchRoomsHandler)
		api.GET("/:id", hb.Rooms.GetRoomHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.Rooms.AddRoomHandler)
	}
}

// RegisterWizardRoutes sets up the booking wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/booking/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		wizardGroup.POST("/session", hb.Wizard.StartSession)
		wizardGroup.GET("/session/:sessionID", hb.Wizard.GetSession)
		wizardGroup.PUT("/session/:sessionID/room", hb.Wizard.SelectRoom)
		wizardGroup.PUT("/session/:sessionID/guest", hb.Wizard.UpdateGuestDetails)
		wizardGroup.PUT("/session/:sessionID/payment", hb.Wizard.UpdatePaymentInfo)
		wizardGroup.POST("/session/:sessionID/next", hb.Wizard.Advance)
		wizardGroup.POST("/session/:sessionID/back", hb.Wizard.Back)
		wizardGroup.POST("/session/:sessionID/submit", hb.Wizard.Submit)
		wizardGroup.DELETE("/session/:sessionID", hb.Wizard.CancelSession)
	}
}

// RegisterBookingRoutes sets up confirmed-booking history endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.GET("", hb.Bookings.ListMyBookingsHandler)
		bookingGroup.GET("/:id", hb.Bookings.GetBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
