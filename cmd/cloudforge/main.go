package main

import (
	"context"
	"log"
	"os"

	"github.com/cloudforge-dev/cloudforge/db"
	"github.com/cloudforge-dev/cloudforge/internal/auth"
	"github.com/cloudforge-dev/cloudforge/internal/metrics"
	"github.com/cloudforge-dev/cloudforge/internal/router"
	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	metrics.Init()

	var s store.Store

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		if err := db.ConnectDatabase(dsn); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		s = store.NewGormStore(db.DB)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		s = store.NewMemStore()
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := db.SeedDemoData(context.Background(), s); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	r := router.NewRouter(s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
