package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/server"
)

// @title JobBasket API
// @version 1.0
// @description REST backend for the JobBasket job portal: job postings, job applications and cookie-based access tokens.
// @BasePath /
func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	db, err := database.NewDBInstance(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	srv := server.New(db)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %s", err)
		}
	}()
	log.Printf("Server running on %s", srv.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("Database close failed: %v", err)
	}
}
