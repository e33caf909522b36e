package main

import (
	"context"
	"convoy-route-service/internal/adapters/repositories"
	"convoy-route-service/internal/config"
	"convoy-route-service/internal/platform/db"
	"database/sql"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool creates the Postgres schema and loads the CSV tables from DATA_DIR.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	dataDir := config.Get("DATA_DIR", "data")
	if err := initAndSeed(ctx, conn, dataDir); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dataDir string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", dataDir)
	if err := repositories.SeedFromCSV(ctx, conn, dataDir); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
