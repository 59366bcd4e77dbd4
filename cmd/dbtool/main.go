package main

import (
	"barycentre-service/internal/adapters/cache"
	"barycentre-service/internal/platform/db"
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dbtool prepares the Postgres lookup-cache schema used by cache.backend=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("BARYCENTRE_CACHE_DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL or BARYCENTRE_CACHE_DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Initializing lookup cache schema...")
	if err := cache.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
