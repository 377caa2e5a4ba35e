package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"green_valley_api/internal/api"
	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common/security"
	"green_valley_api/internal/domain/repository"
	"green_valley_api/internal/platform/config"
	"green_valley_api/internal/platform/database"
	"green_valley_api/internal/platform/ratelimit"
)

func main() {
	// 1. Load Configuration (fatal if JWT_SECRET is missing)
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database and run migrations
	database.Connect()
	defer database.Close()
	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	fmt.Println("Database connected and migrated.")

	// 4. Initialize Redis
	ratelimit.ConnectRedis()
	defer ratelimit.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	noticeRepo := repository.NewPgNoticeRepository(database.DB)
	complaintRepo := repository.NewPgComplaintRepository(database.DB)
	staffRepo := repository.NewPgStaffRepository(database.DB)
	amenityRepo := repository.NewPgAmenityRepository(database.DB)
	contactRepo := repository.NewPgContactRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	complaintService := service.NewComplaintService(complaintRepo, userRepo)
	residentService := service.NewResidentService(userRepo)
	staffService := service.NewStaffService(staffRepo)
	amenityService := service.NewAmenityService(amenityRepo)
	contactService := service.NewContactService(contactRepo)
	dashboardService := service.NewDashboardService(userRepo, staffRepo, complaintRepo, noticeRepo)

	loginLimiter := ratelimit.NewLimiter(ratelimit.RDB,
		config.AppConfig.LoginAttemptLimit, config.AppConfig.LoginAttemptWindow)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(
		authService, noticeService, complaintService, residentService,
		staffService, amenityService, contactService, dashboardService,
		loginLimiter,
	)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
