package store

import (
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
)

// CatalogStore reads a restaurant's categories and products. Every query is
// scoped by restaurant_id; the caller resolves that id from the session,
// never from client input.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ListCategories returns the restaurant's categories ordered by
// display_order, insertion order breaking ties.
func (s *CatalogStore) ListCategories(restaurantID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.
		Where("restaurant_id = ?", restaurantID).
		Order("display_order asc, id asc").
		Find(&categories).Error
	return categories, err
}

// ListProducts returns the restaurant's products, filtered to active ones
// unless includeInactive is set.
func (s *CatalogStore) ListProducts(restaurantID uint, includeInactive bool) ([]models.Product, error) {
	query := s.db.Where("restaurant_id = ?", restaurantID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var products []models.Product
	err := query.Order("id asc").Find(&products).Error
	return products, err
}

// ProductWithCategory pairs a product with its resolved category, nil when
// the product has none or its category_id points outside the supplied set.
type ProductWithCategory struct {
	models.Product
	Category *models.Category `json:"category"`
}

// JoinWithCategory is a pure in-memory join. The two slices may come from
// separate queries, so a dangling category_id is tolerated and treated as
// uncategorized.
func JoinWithCategory(products []models.Product, categories []models.Category) []ProductWithCategory {
	byID := make(map[uint]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	joined := make([]ProductWithCategory, 0, len(products))
	for _, p := range products {
		pc := ProductWithCategory{Product: p}
		if p.CategoryID != nil {
			pc.Category = byID[*p.CategoryID]
		}
		joined = append(joined, pc)
	}
	return joined
}

// GetProduct fetches one product and verifies it belongs to the restaurant.
func (s *CatalogStore) GetProduct(restaurantID, productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.RestaurantID != restaurantID {
		return nil, ErrNotAuthorized
	}
	return &product, nil
}
