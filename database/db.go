package database

import (
	"fmt"
	"log"
	"os"

	"dental-forms-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func dsn() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
}

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn()), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
}

func AutoMigrate() {
	if err := DB.AutoMigrate(&models.ContactForm{}, &models.ApplicationForm{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

// Connected reports whether the underlying connection answers a ping.
// Used by the health endpoint.
func Connected() bool {
	if DB == nil {
		return false
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
