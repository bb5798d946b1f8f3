package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Gong130/Server-of-iNews/config"
	"github.com/Gong130/Server-of-iNews/database"
	"github.com/Gong130/Server-of-iNews/models"
	"github.com/Gong130/Server-of-iNews/store"
)

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
	fmt.Println("🌱 Starting seed...")

	news := store.NewNewsStore(db)
	if err := news.SeedIfEmpty(ctx, store.DemoNews()); err != nil {
		log.Fatalf("Failed to seed news: %v", err)
	}
	fmt.Println("✅ Demo news seeded")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

// seedAdminUser ensures the default admin exists. Count-then-create keeps
// the command idempotent across runs.
func seedAdminUser(ctx context.Context, db *gorm.DB) error {
	const (
		username = "admin"
		password = "admin123"
	)

	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Admin user already exists, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	fmt.Println("✅ Admin user seeded")
	return nil
}
