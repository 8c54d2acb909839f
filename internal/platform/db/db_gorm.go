package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "tse_backend/internal/feature/auth/adapters"
	authentity "tse_backend/internal/feature/auth/domain/entity"
	candleadapters "tse_backend/internal/feature/candles/adapters"
	symbolentity "tse_backend/internal/feature/symbols/domain/entity"
)

// OpenDB opens the configured database (DB_DRIVER selects mysql or
// postgres, defaulting to mysql) and retries for up to a minute so the
// service survives a database that is still starting.
func OpenDB() *gorm.DB {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	var open func() (*gorm.DB, error)
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
		open = func() (*gorm.DB, error) { return gorm.Open(gpostgres.Open(dsn), &gorm.Config{}) }
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
		open = func() (*gorm.DB, error) { return gorm.Open(gmysql.Open(dsn), &gorm.Config{}) }
	default:
		log.Fatalf("unsupported DB_DRIVER: %q", driver)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = open()
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&symbolentity.Symbol{},
			&candleadapters.CandleModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
