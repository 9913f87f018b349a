package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/staybase/staybase/internal/auth"
	"github.com/staybase/staybase/internal/database"
)

// RouterConfig carries all router dependencies, improving testability and
// keeping NewRouter's signature stable as the surface grows.
type RouterConfig struct {
	Database    *database.Database
	Accounts    AccountsService
	Bookings    BookingsService
	Favorites   FavoritesService
	TokenIssuer *auth.TokenIssuer
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// The mobile client runs off-origin during development; mirror the
	// original backend's wide-open CORS policy.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	health := NewHealthController(cfg.Database, cfg.Version)
	accountsController := NewAccountsController(cfg.Accounts, cfg.TokenIssuer)
	bookingsController := NewBookingsController(cfg.Bookings)
	favoritesController := NewFavoritesController(cfg.Favorites)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Account endpoints
	router.POST("/register", accountsController.Register)
	router.POST("/login", accountsController.Login)
	router.GET("/user/:id", accountsController.GetAccount)
	// Alias kept for the profile screen, which fetches /users/:id.
	router.GET("/users/:id", accountsController.GetAccount)
	router.GET("/me", auth.RequireAuth(cfg.TokenIssuer), accountsController.Me)

	// Booking endpoints
	router.POST("/booking", bookingsController.CreateBooking)
	router.PATCH("/booking/:id", bookingsController.CancelBooking)
	router.GET("/bookings/:userId", bookingsController.ListBookings)

	// Favorites endpoints
	router.POST("/favorites", favoritesController.AddFavorite)
	router.DELETE("/favorites/:id", favoritesController.RemoveFavorite)
	router.GET("/favorites/:userId", favoritesController.ListFavorites)
	router.GET("/favorites/:userId/:hotelId", favoritesController.CheckFavorite)

	return router
}
