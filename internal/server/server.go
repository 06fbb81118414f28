package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/database"
)

// Server contain port which server are running on and database instance
type Server struct {
	port int

	DB *database.Service
}

// New constructs the HTTP server around an already-connected database
// service. The caller owns the service lifecycle.
func New(db *database.Service) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 3000
	}

	s := &Server{
		port: port,
		DB:   db,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
