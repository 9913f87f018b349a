package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staybase/staybase/internal/accounts"
	"github.com/staybase/staybase/internal/auth"
	"github.com/staybase/staybase/internal/bookings"
	"github.com/staybase/staybase/internal/config"
	"github.com/staybase/staybase/internal/database"
	accountsrepo "github.com/staybase/staybase/internal/database/accounts"
	bookingsrepo "github.com/staybase/staybase/internal/database/bookings"
	favoritesrepo "github.com/staybase/staybase/internal/database/favorites"
	"github.com/staybase/staybase/internal/favorites"
	http_controllers "github.com/staybase/staybase/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then drain in-flight
	// requests before closing the database handle.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Staybase v%s", version)

	// One database handle for the process lifetime, injected into each
	// repository; SQLite serializes writes on its own.
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	tokenSecret := cfg.Auth.TokenSecret
	if tokenSecret == "" {
		tokenSecret, err = auth.GenerateTokenSecret()
		if err != nil {
			log.Fatalf("Failed to generate token secret: %v", err)
		}
		log.Printf("Generated token secret (set AUTH_TOKEN_SECRET to persist sessions across restarts)")
	}
	tokenIssuer := auth.NewTokenIssuer(tokenSecret, cfg.Auth.TokenLifetime)

	accountsRepo := accountsrepo.NewRepository(db.DB)
	bookingsRepo := bookingsrepo.NewRepository(db.DB)
	favoritesRepo := favoritesrepo.NewRepository(db.DB)

	accountsService := accounts.NewService(accountsRepo, cfg.Auth.BcryptCost)
	bookingsService := bookings.NewService(bookingsRepo, accountsRepo)
	favoritesService := favorites.NewService(favoritesRepo)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		Accounts:    accountsService,
		Bookings:    bookingsService,
		Favorites:   favoritesService,
		TokenIssuer: tokenIssuer,
		Version:     version,
	})

	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
