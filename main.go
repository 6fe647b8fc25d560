package main

import (
	"log"
	"net/http"
	"os"

	"github.com/davidbures/learnset-api/config"
	"github.com/davidbures/learnset-api/handlers"
	"github.com/davidbures/learnset-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	config.LoadEnv()

	if err := config.Connect(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.Close()

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := DBHandler.Router()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.Env.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(middleware.RequestLogger(mux))

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("Listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
