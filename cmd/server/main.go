package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"levelup/backend/internal/config"
	"levelup/backend/internal/database"
	"levelup/backend/internal/server"

	"github.com/gin-gonic/gin"
)

func init() {
	config.LoadConfig()
}

// @title           Level Up API
// @version         1.0
// @description     Tabletop gaming meetups: games, events and who is attending them.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	gin.SetMode(config.AppConfig.GinMode)

	// Connect to the database
	database.Connect(config.AppConfig.DBDriver, config.AppConfig.DatabaseURL)

	router, err := server.NewRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server is running on :%s", config.AppConfig.Port)
		log.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
