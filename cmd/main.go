package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/config"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/middleware"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/routes"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize NATS producer with graceful degradation
	natsAvailable := true
	err = broker.InitProducer(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue, but event publishing will be disabled")
		natsAvailable = false
	} else {
		defer broker.CloseProducer()
	}

	subjects := []string{
		broker.UserSubject,
		broker.NotificationSubject,
		broker.EventSubject,
		broker.DonationSubject,
		broker.SponsorshipSubject,
		broker.VolunteerSubject,
		broker.StorySubject,
		broker.MessageSubject,
	}

	webSocketService := services.NewWebSocketService(db, subjects)
	services.WebSocketServiceInstance = webSocketService
	webSocketService.Start(cfg)
	defer webSocketService.Stop()

	// Outbox dispatch only makes sense when the producer is up
	if natsAvailable {
		eventHandlerService := services.NewEventHandlerService(db)
		services.EventHandlerServiceInstance = eventHandlerService
		eventHandlerService.Start()
		defer eventHandlerService.Stop()
	} else {
		log.Println("Outbox dispatcher is disabled due to NATS unavailability")
	}

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	userService := services.NewUserService(authService)
	services.UserServiceInstance = userService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := router.Group("/api/v1")

	public := api.Group("")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireRole(models.RoleAdmin))

	routes.RegisterAuthRoutes(public, db, authService, userService)
	routes.RegisterUserRoutes(protected, admin, db, userService)
	routes.RegisterNotificationRoutes(protected, admin, db, services.NotificationServiceInstance)
	routes.RegisterEventRoutes(public, protected, admin, db, services.EventServiceInstance)
	routes.RegisterDonationRoutes(protected, admin, db, services.DonationServiceInstance)
	routes.RegisterSponsorshipRoutes(protected, admin, db, services.SponsorshipServiceInstance)
	routes.RegisterVolunteerRoutes(protected, admin, db, services.VolunteerServiceInstance)
	routes.RegisterStoryRoutes(public, admin, db, services.StoryServiceInstance)
	routes.RegisterMessageRoutes(public, admin, db, services.MessageServiceInstance)
	routes.RegisterWebSocketRoutes(router, authService, webSocketService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		webSocketService.Stop()
		broker.CloseProducer()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
