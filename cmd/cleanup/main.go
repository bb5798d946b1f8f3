package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Gong130/Server-of-iNews/config"
	"github.com/Gong130/Server-of-iNews/database"
	"github.com/Gong130/Server-of-iNews/store"
)

// Dev utility: wipe the news table and put the demo rows back.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	fmt.Println("Start cleanup...")

	news := store.NewNewsStore(db)
	if err := news.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to delete news: %v", err)
	}
	fmt.Println("✅ Deleted all news")

	if err := news.SeedIfEmpty(ctx, store.DemoNews()); err != nil {
		log.Fatalf("Failed to re-seed news: %v", err)
	}
	fmt.Println("✅ Demo news re-seeded")
}
