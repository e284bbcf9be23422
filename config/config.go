package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the configured database. MySQL when DB_HOST is set,
// otherwise a local SQLite file so the app runs without any setup.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return gorm.Open(sqlite.Open(getEnv("DB_FILE", "menu_du_jour.db")), cfg)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		host,
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "menu_du_jour"),
	)
	return gorm.Open(mysql.Open(dsn), cfg)
}
