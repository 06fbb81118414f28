// Package database implements the connection to the MongoDB deployment and
// hands out the collection handles the controllers work with.
package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultHost   = "cluster0.eznirgn.mongodb.net"
	defaultDBName = "jobportal"

	// JobsCollection is the collection holding job postings.
	JobsCollection = "jobs"
	// ApplicationsCollection is the collection holding job applications.
	ApplicationsCollection = "applications"
)

// Service holds the Mongo client and the portal database. It is constructed
// once in main and injected into the server; there is no package-level
// singleton.
type Service struct {
	client *mongo.Client
	db     *mongo.Database

	// Config
	Config *DBConfig
}

// DBConfig holds the configuration parameters for connecting to the
// document store.
type DBConfig struct {
	User      string
	Password  string
	Host      string
	DBName    string
	Constr    string
	useConstr bool
}

// ConfigFromEnv builds a DBConfig from DB_USER, DB_PASS and friends.
func ConfigFromEnv() *DBConfig {
	useConstr := false
	if raw := os.Getenv("USE_CONNECTION_STR"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("USE_CONNECTION_STR environment variable is invalid: %v", err)
		}
		useConstr = parsed
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = defaultHost
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	return &DBConfig{
		User:      os.Getenv("DB_USER"),
		Password:  os.Getenv("DB_PASS"),
		Host:      host,
		DBName:    dbName,
		Constr:    os.Getenv("DB_CONNECTION_STR"),
		useConstr: useConstr,
	}
}

func (d *DBConfig) getURI() string {
	if d.useConstr {
		if d.Constr == "" {
			log.Fatal("DB_CONNECTION_STR is empty")
		}
		return d.Constr
	}
	if d.User == "" || d.Password == "" {
		log.Fatal("Database configuration is incomplete")
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host)
}

// NewDBInstance connects to the document store with the given configuration
// and verifies the connection with a ping. The returned Service is safe for
// concurrent use by all request handlers.
func NewDBInstance(config *DBConfig) (*Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(config.getURI()).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Println("Connected to MongoDB successfully.")

	return &Service{
		client: client,
		db:     client.Database(config.DBName),
		Config: config,
	}, nil
}

// Jobs returns the handle of the jobs collection.
func (s *Service) Jobs() *mongo.Collection {
	return s.db.Collection(JobsCollection)
}

// Applications returns the handle of the applications collection.
func (s *Service) Applications() *mongo.Collection {
	return s.db.Collection(ApplicationsCollection)
}

// Health checks the health of the database connection by pinging the
// deployment. It returns a map with keys indicating health statistics.
func (s *Service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["database"] = s.Config.DBName
	return stats
}

// Close disconnects the client. It is called once during shutdown.
func (s *Service) Close(ctx context.Context) error {
	log.Printf("Disconnected from database: %s", s.Config.DBName)
	return s.client.Disconnect(ctx)
}
