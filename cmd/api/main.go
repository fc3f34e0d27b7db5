package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"riftgate-rest-api/internal/config"
	"riftgate-rest-api/internal/identity"
	"riftgate-rest-api/internal/riot"
	"riftgate-rest-api/internal/service"
	httpTransport "riftgate-rest-api/internal/transport/http"
	"riftgate-rest-api/internal/transport/http/handler"
)

func main() {
	// Load configuration. Required variables (upstream token, identity
	// credentials, auth secret) abort startup when absent.
	cfg := config.MustLoad()

	log.Printf("Starting %s v%s in %s mode",
		cfg.App.Name,
		cfg.App.Version,
		cfg.App.Environment,
	)

	// Outbound clients for the two external services
	riotClient := riot.NewClient(cfg.Riot.BaseURL, cfg.Riot.Token, cfg.Riot.Timeout)
	log.Printf("✓ Game data upstream: %s (timeout %s)", cfg.Riot.BaseURL, cfg.Riot.Timeout)

	identityClient := identity.NewClient(cfg.Identity.Endpoint, cfg.Identity.Project, cfg.Identity.Key, cfg.Identity.Timeout)
	log.Printf("✓ Identity service: %s (project %s)", cfg.Identity.Endpoint, cfg.Identity.Project)

	// Initialize services
	gameDataService := service.NewGameDataService(riotClient)
	if gameDataService == nil {
		log.Fatalf("FATAL: Failed to create GameDataService")
	}
	preferencesService := service.NewPreferencesService(identityClient)
	if preferencesService == nil {
		log.Fatalf("FATAL: Failed to create PreferencesService")
	}
	log.Println("✓ Services initialized")

	// Initialize transport layer - HTTP
	httpHandler := handler.New(cfg.App.Name, cfg.App.Version)
	gameDataHandler := handler.NewGameDataHandler(gameDataService)
	prefsHandler := handler.NewPreferencesHandler(preferencesService)

	router := httpTransport.NewRouter(httpHandler, gameDataHandler, prefsHandler, cfg.Auth.Secret)

	// Configure HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("HTTP server listening on %s", cfg.Server.Address())
		log.Println("Available endpoints:")
		log.Println("  GET  /api/v1/")
		log.Println("  POST /api/v1/account/fetch")
		log.Println("  GET  /api/v1/{game}/match/{matchId}")
		log.Println("  GET  /api/v1/{game}/matches/by-puuid/{puuid}")
		log.Println("  PUT  /api/v1/users/{userId}/prefs  (auth)")
		log.Println("  GET  /api/v1/users/{userId}/prefs  (auth)")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

// init sets up logging format
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
}
