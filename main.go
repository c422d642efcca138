// File: mentu/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentu/config"
	"mentu/cron"
	tutorRepoPkg "mentu/database/repository/tutor"
	"mentu/handlers"
	"mentu/middleware"
	"mentu/routes"
	"mentu/services/booking"
	"mentu/services/calendar"
	tutorSvcPkg "mentu/services/tutor"
	"mentu/session"
	"mentu/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Session state backend: Redis when configured, in-process otherwise.
	var sessionStore session.Store
	switch config.AppConfig.SessionBackend {
	case "redis":
		sessionStore = session.NewRedisStore()
	default:
		memStore := session.NewMemoryStore()
		cron.StartSessionJanitor(memStore)
		sessionStore = memStore
	}
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMemoryTutorRepo()

	// services.
	calendarService := &calendar.DefaultCalendarService{
		Sessions: sessionStore,
		TTL:      sessionTTL,
	}
	tutorService := &tutorSvcPkg.DefaultTutorService{
		Repo: tutorRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Tutors:   tutorRepo,
		Sessions: sessionStore,
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	tutorHandler := handlers.NewTutorHandler(tutorService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Calendar endpoints.
		GetEventsHandler:   calendarHandler.GetEventsHandler,
		GetOverviewHandler: calendarHandler.GetOverviewHandler,
		ToggleEventHandler: calendarHandler.ToggleEventHandler,
		OpenDraftHandler:   calendarHandler.OpenDraftHandler,
		UpdateDraftHandler: calendarHandler.UpdateDraftHandler,
		CommitDraftHandler: calendarHandler.CommitDraftHandler,
		CancelDraftHandler: calendarHandler.CancelDraftHandler,
		ExportICSHandler:   calendarHandler.ExportICSHandler,

		// Tutor directory endpoints.
		ListTutorsHandler:   tutorHandler.ListTutorsHandler,
		GetTutorByIDHandler: tutorHandler.GetTutorByIDHandler,
		GetSubjectsHandler:  tutorHandler.GetSubjectsHandler,

		// Booking endpoints.
		InitiateBooking: bookingHandler.InitiateBooking,
		UpdateBooking:   bookingHandler.UpdateBooking,
		QuoteBooking:    bookingHandler.QuoteBooking,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelBooking:   bookingHandler.CancelBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
