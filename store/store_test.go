package store

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/utils"
)

// Each test opens its own named in-memory database so the shared-cache
// connections of one test never see another test's rows.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Product{},
		&models.DailyMenu{},
		&models.DailyMenuItem{},
		&models.Invite{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func todayForTest() string {
	return utils.TodayString()
}

func testDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) models.Restaurant {
	t.Helper()
	r := models.Restaurant{Name: name, Slug: name + "-test"}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("failed to seed restaurant: %v", err)
	}
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, restaurantID uint, categoryID *uint, name, price string) models.Product {
	t.Helper()
	p := models.Product{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		PriceUnit:    models.PriceUnitFixed,
		IsActive:     true,
	}
	if price != "" {
		p.Price = testDecimal(price)
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return p
}
