package router

import (
	"suponos_backend/internal/handlers"
	"suponos_backend/internal/middleware"
	"suponos_backend/internal/services"
	"suponos_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application on top of the given
// storage backend.
func Setup(engine *gin.Engine, store storage.Storage) {
	// Initialize Services
	authService := services.NewAuthService(store)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(store)
	eventHandler := handlers.NewEventHandler(store)
	gameHandler := handlers.NewGameHandler(store)
	reservationHandler := handlers.NewReservationHandler(store)
	contentHandler := handlers.NewContentHandler(store)

	engine.GET("/api/health", handlers.Health)

	api := engine.Group("/api")

	SetupAuthRoutes(api, authHandler)
	SetupPublicRoutes(api, menuHandler, eventHandler, gameHandler, reservationHandler, contentHandler)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		SetupAdminMenuRoutes(admin, menuHandler)
		SetupAdminEventRoutes(admin, eventHandler)
		SetupAdminGameRoutes(admin, gameHandler)
		SetupAdminReservationRoutes(admin, reservationHandler)
		SetupAdminContentRoutes(admin, contentHandler)
	}
}
