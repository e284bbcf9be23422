package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

type CategoryController struct {
	DB          *gorm.DB
	Catalog     *store.CatalogStore
	Restaurants *store.RestaurantStore
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:          db,
		Catalog:     store.NewCatalogStore(db),
		Restaurants: store.NewRestaurantStore(db),
	}
}

// GetCategories lists the restaurant's categories in display order.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, cc.Restaurants)
	if !ok {
		return
	}

	categories, err := cc.Catalog.ListCategories(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catégories", categories)
}

// CreateCategory extends the taxonomy beyond the seeded defaults.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, cc.Restaurants)
	if !ok {
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		RestaurantID: restaurantID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Catégorie créée", category)
}

// UpdateCategory renames or reorders a category of the caller's restaurant.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, cc.Restaurants)
	if !ok {
		return
	}
	categoryID, ok := uintParam(c, "cat_id")
	if !ok {
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("catégorie introuvable"))
		return
	}
	if category.RestaurantID != restaurantID {
		utils.RespondError(c, http.StatusForbidden, store.ErrNotAuthorized)
		return
	}

	var req struct {
		Name         *string `json:"name"`
		DisplayOrder *int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name != nil && *req.Name != "" {
		category.Name = *req.Name
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catégorie mise à jour", category)
}

// DeleteCategory removes a category; its products fall back to the
// "Autres" bucket thanks to the nullable foreign key.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, cc.Restaurants)
	if !ok {
		return
	}
	categoryID, ok := uintParam(c, "cat_id")
	if !ok {
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("catégorie introuvable"))
		return
	}
	if category.RestaurantID != restaurantID {
		utils.RespondError(c, http.StatusForbidden, store.ErrNotAuthorized)
		return
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Catégorie supprimée", gin.H{"category_id": categoryID})
}
