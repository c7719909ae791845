package router

import (
	"suponos_backend/internal/handlers"
	"suponos_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.GET("/me", authHandler.Profile)
		}
	}
}

// SetupPublicRoutes sets up the unauthenticated site routes: the content the
// marketing pages render and the booking form submission.
func SetupPublicRoutes(
	apiGroup *gin.RouterGroup,
	menuHandler *handlers.MenuHandler,
	eventHandler *handlers.EventHandler,
	gameHandler *handlers.GameHandler,
	reservationHandler *handlers.ReservationHandler,
	contentHandler *handlers.ContentHandler,
) {
	apiGroup.GET("/menu/categories", menuHandler.GetCategories)
	apiGroup.GET("/menu/items", menuHandler.GetItems)
	apiGroup.GET("/menu/items/:id", menuHandler.GetItem)

	apiGroup.GET("/events", eventHandler.GetEvents)
	apiGroup.GET("/events/slug/:slug", eventHandler.GetEventBySlug)
	apiGroup.GET("/events/:id", eventHandler.GetEvent)

	apiGroup.GET("/games", gameHandler.GetGames)
	apiGroup.GET("/games/today", gameHandler.GetTodaysGames)
	apiGroup.GET("/games/upcoming", gameHandler.GetUpcomingGames)
	apiGroup.GET("/games/:id", gameHandler.GetGame)

	apiGroup.POST("/reservations", reservationHandler.CreateReservation)

	apiGroup.GET("/settings", contentHandler.GetSettings)
	apiGroup.GET("/promotions", contentHandler.GetPromotions)
	apiGroup.GET("/landing", contentHandler.GetLanding)
}

// SetupAdminMenuRoutes sets up the authenticated menu management routes.
func SetupAdminMenuRoutes(adminGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	categoryRoutes := adminGroup.Group("/menu/categories")
	{
		categoryRoutes.POST("", menuHandler.CreateCategory)
		categoryRoutes.PUT("/:id", menuHandler.UpdateCategory)
		categoryRoutes.DELETE("/:id", menuHandler.DeleteCategory)
	}

	itemRoutes := adminGroup.Group("/menu/items")
	{
		itemRoutes.POST("", menuHandler.CreateItem)
		itemRoutes.PUT("/:id", menuHandler.UpdateItem)
		itemRoutes.DELETE("/:id", menuHandler.DeleteItem)
	}
}

// SetupAdminEventRoutes sets up the authenticated event management routes.
func SetupAdminEventRoutes(adminGroup *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	eventRoutes := adminGroup.Group("/events")
	{
		eventRoutes.POST("", eventHandler.CreateEvent)
		eventRoutes.PUT("/:id", eventHandler.UpdateEvent)
		eventRoutes.DELETE("/:id", eventHandler.DeleteEvent)
	}
}

// SetupAdminGameRoutes sets up the authenticated game schedule routes.
func SetupAdminGameRoutes(adminGroup *gin.RouterGroup, gameHandler *handlers.GameHandler) {
	gameRoutes := adminGroup.Group("/games")
	{
		gameRoutes.POST("", gameHandler.CreateGame)
		gameRoutes.PUT("/:id", gameHandler.UpdateGame)
		gameRoutes.DELETE("/:id", gameHandler.DeleteGame)
	}
}

// SetupAdminReservationRoutes sets up the authenticated reservation
// management routes.
func SetupAdminReservationRoutes(adminGroup *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservationRoutes := adminGroup.Group("/reservations")
	{
		reservationRoutes.GET("", reservationHandler.GetReservations)
		reservationRoutes.GET("/:id", reservationHandler.GetReservation)
		reservationRoutes.PUT("/:id", reservationHandler.UpdateReservation)
		reservationRoutes.DELETE("/:id", reservationHandler.DeleteReservation)
	}
}

// SetupAdminContentRoutes sets up the authenticated site content routes.
func SetupAdminContentRoutes(adminGroup *gin.RouterGroup, contentHandler *handlers.ContentHandler) {
	adminGroup.PUT("/settings", contentHandler.UpdateSettings)
	adminGroup.PUT("/promotions", contentHandler.UpdatePromotions)
	adminGroup.PUT("/landing", contentHandler.UpdateLanding)
}
