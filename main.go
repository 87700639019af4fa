package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitality/clock"
	"hospitality/config"
	"hospitality/cron"
	"hospitality/database"
	guestRepoPkg "hospitality/database/repository/guest"
	reservationRepoPkg "hospitality/database/repository/reservation"
	roomRepoPkg "hospitality/database/repository/room"
	userRepoPkg "hospitality/database/repository/user"
	"hospitality/handlers"
	"hospitality/middleware"
	"hospitality/routes"
	"hospitality/services/availability"
	"hospitality/services/catalog"
	"hospitality/services/concierge"
	"hospitality/services/guest"
	"hospitality/services/notification"
	"hospitality/services/report"
	"hospitality/services/reservation"
	"hospitality/services/user"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client := database.InitDB()
	db := client.Database(config.AppConfig.DatabaseName)
	utils.InitCache()
	utils.InitOTPCache()
	utils.InitAIContextCache()

	// repositories.
	rooms := roomRepoPkg.NewMongoRoomRepo(db)
	guests := guestRepoPkg.NewMongoGuestRepo(db)
	reservations := reservationRepoPkg.NewMongoReservationRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)

	// services.
	sysClock := clock.NewSystem()
	notifier := notification.NewSMTPNotifier()
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	catalogService := catalog.NewCatalogService(rooms)
	availabilityService := availability.NewAvailabilityService(rooms)
	reservationService := reservation.NewReservationService(reservations, rooms, guests, sysClock, reminderClient)
	reportService := report.NewReportService(rooms)
	guestService := guest.NewGuestService(guests)
	userService := user.NewUserService(users, notifier)

	var llm concierge.LLMClient
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiClient, err := concierge.NewGeminiClient(key)
		if err != nil {
			logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
		llm = geminiClient
	}
	ctxStore := concierge.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	conciergeService := concierge.NewConciergeService(ctxStore, availabilityService, reservationService, reportService, sysClock, llm)

	if config.AppConfig.SeedInventory {
		if err := catalogService.SeedInventory(); err != nil {
			logger.Fatal("Failed to seed room inventory", zap.Error(err))
		}
	}

	cron.InitReminderWorker(notifier)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.Register(router, &routes.Handlers{
		UserRepo:     users,
		Rooms:        &handlers.RoomHandler{Catalog: catalogService},
		Availability: &handlers.AvailabilityHandler{Availability: availabilityService},
		Reservations: &handlers.ReservationHandler{Reservations: reservationService},
		Guests:       &handlers.GuestHandler{Guests: guestService},
		Stats:        &handlers.StatsHandler{Reports: reportService},
		Users:        &handlers.UserHandler{Users: userService},
		Concierge:    &handlers.ConciergeHandler{Concierge: conciergeService},
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect MongoDB", zap.Error(err))
	}
	logger.Info("Server exited")
}
