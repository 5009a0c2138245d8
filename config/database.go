package config

import (
	"log"
	"os"

	"verimail/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("database connection failed: %s", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.TokenRecord{},
		&entity.AuditLog{},
	); err != nil {
		log.Fatalf("migration failed: %s", err)
	}

	return db
}
