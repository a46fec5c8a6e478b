// File: staybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"staybook/config"
	"staybook/database"
	bookingRepoPkg "staybook/database/repository/booking"
	roomRepoPkg "staybook/database/repository/room"
	userRepoPkg "staybook/database/repository/user"
	"staybook/handlers"
	"staybook/middleware"
	"staybook/routes"
	"staybook/services/booking"
	"staybook/services/notification"
	"staybook/services/payment"
	"staybook/services/rooms"
	"staybook/services/user"
	"staybook/services/wizard"
	"staybook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	handlers.SetUserService(userService)

	roomService := &rooms.DefaultRoomService{
		Repo:        roomRepo,
		CacheClient: utils.GetCacheClient(),
	}

	notificationService := notification.NewDefaultNotificationService(userRepo)
	paymentProvider := payment.NewStripeProvider(logger)

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Payments: paymentProvider,
		Notifier: notificationService,
		Currency: config.AppConfig.Currency,
		TaxRate:  0.12,
	}

	wizardService := &wizard.DefaultWizardService{
		Store:      wizard.NewRedisDraftStore(utils.GetSessionCacheClient()),
		Rooms:      roomService,
		Gateway:    bookingService,
		SessionTTL: time.Duration(config.AppConfig.WizardSessionTTLMin) * time.Minute,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Wizard:   handlers.NewWizardHandler(wizardService, logger),
		Rooms:    handlers.NewRoomHandler(roomService, logger),
		Bookings: handlers.NewBookingHandler(bookingService, logger),

		RegisterUserHandler:        handlers.RegisterUserHandler,
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler,
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler,
		UpdateFCMTokenHandler:      handlers.UpdateFCMTokenHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
