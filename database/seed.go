package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
)

// Default taxonomy created for every new restaurant. Boisson renders as the
// lead-in section, the rest in display order.
var seedCategories = []struct {
	Name         string
	DisplayOrder int
}{
	{"Boisson", 0},
	{"Entrée", 1},
	{"Plat", 2},
	{"Fromage", 3},
	{"Dessert", 4},
}

type seedItem struct {
	Category  string
	Name      string
	Price     string
	PriceUnit string
}

// Starter product list, Le Severo carte.
var seedItems = []seedItem{
	{Category: "Boisson", Name: "Coupe de champagne A Heucq (12cl)", Price: "16.00"},

	{Category: "Entrée", Name: "Boudin noir de Ch Parra, salade verte", Price: "14.00"},
	{Category: "Entrée", Name: "Rosette de Vic", Price: "14.00"},
	{Category: "Entrée", Name: "Cecina de bœuf séché", Price: "20.00"},
	{Category: "Entrée", Name: "Pied de porc désossé, salade verte", Price: "14.00"},
	{Category: "Entrée", Name: "Poireaux vigne", Price: "14.00"},

	{Category: "Plat", Name: "Steak haché (250 grs), frites ou haricots verts", Price: "19.50"},
	{Category: "Plat", Name: "Steak tartare (250 grs), frites ou haricots verts", Price: "28.00"},
	{Category: "Plat", Name: "Faux-Filet noire de la Baltique, frites", Price: "52.00"},
	{Category: "Plat", Name: "Pavé de rumsteak sauce au poivre, frites", Price: "40.00"},
	{Category: "Plat", Name: "L Bone, frites", Price: "160.00"},
	{Category: "Plat", Name: "Filet de bœuf sauce au poivre, frites", Price: "65.00"},
	{Category: "Plat", Name: "Côte de bœuf bio domaine Coiffard 2-3P, frites", Price: "180.00", PriceUnit: models.PriceUnitPerPerson},
	{Category: "Plat", Name: "Côte de bœuf bio domaine Coiffard 3+, frites", Price: "220.00", PriceUnit: models.PriceUnitPerPerson},
	{Category: "Plat", Name: "Tataki de bœuf anchois et comté, frites", Price: "32.00"},

	{Category: "Fromage", Name: "Saint Nectaire", Price: "8.00"},
	{Category: "Fromage", Name: "Comté", Price: "8.00"},
	{Category: "Fromage", Name: "Brie de Melun", Price: "8.00"},

	{Category: "Dessert", Name: "Mousse au chocolat", Price: "9.00"},
	{Category: "Dessert", Name: "Crème au caramel", Price: "9.00"},
	{Category: "Dessert", Name: "Tarte aux poires", Price: "9.00"},
}

// SeedCatalog creates the default categories for a restaurant (when absent)
// and inserts the starter products, all active.
func SeedCatalog(db *gorm.DB, restaurantID uint) error {
	var categories []models.Category
	if err := db.Where("restaurant_id = ?", restaurantID).Find(&categories).Error; err != nil {
		return err
	}

	if len(categories) == 0 {
		for _, sc := range seedCategories {
			categories = append(categories, models.Category{
				RestaurantID: restaurantID,
				Name:         sc.Name,
				DisplayOrder: sc.DisplayOrder,
			})
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	products := make([]models.Product, 0, len(seedItems))
	for _, item := range seedItems {
		price := decimal.RequireFromString(item.Price)
		unit := item.PriceUnit
		if unit == "" {
			unit = models.PriceUnitFixed
		}
		var categoryID *uint
		if id, ok := byName[item.Category]; ok {
			categoryID = &id
		}
		products = append(products, models.Product{
			RestaurantID: restaurantID,
			CategoryID:   categoryID,
			Name:         item.Name,
			Price:        &price,
			PriceUnit:    unit,
			IsActive:     true,
		})
	}
	return db.Create(&products).Error
}
