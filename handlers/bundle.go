package handlers

import (
	"github.com/gin-gonic/gin"

	userRepo "staybook/database/repository/user"
)

// HandlerBundle collects the handlers and shared dependencies that the
// route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Wizard   *WizardHandler
	Rooms    *RoomHandler
	Bookings *BookingHandler

	// User endpoints.
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc
}
