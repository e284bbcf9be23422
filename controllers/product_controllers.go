package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

type ProductController struct {
	DB          *gorm.DB
	Catalog     *store.CatalogStore
	Restaurants *store.RestaurantStore
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		DB:          db,
		Catalog:     store.NewCatalogStore(db),
		Restaurants: store.NewRestaurantStore(db),
	}
}

// GetProducts lists the catalog joined with categories.
// ?include_inactive=1 adds deactivated products (they stay editable).
func (pc *ProductController) GetProducts(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, pc.Restaurants)
	if !ok {
		return
	}

	includeInactive := c.Query("include_inactive") == "1"

	categories, err := pc.Catalog.ListCategories(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	products, err := pc.Catalog.ListProducts(restaurantID, includeInactive)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Catalogue", gin.H{
		"products":   store.JoinWithCategory(products, categories),
		"categories": categories,
	})
}

type productRequest struct {
	Name        string           `json:"name" binding:"required"`
	CategoryID  *uint            `json:"category_id"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	PriceUnit   string           `json:"price_unit"`
}

// CreateProduct adds a product to the caller's catalog.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, pc.Restaurants)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	unit := req.PriceUnit
	if unit == "" {
		unit = models.PriceUnitFixed
	}

	product := models.Product{
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PriceUnit:    unit,
		IsActive:     true,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Produit créé", product)
}

// UpdateProduct edits a product after verifying ownership.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, pc.Restaurants)
	if !ok {
		return
	}
	productID, ok := uintParam(c, "product_id")
	if !ok {
		return
	}

	product, err := pc.Catalog.GetProduct(restaurantID, productID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		CategoryID  *uint            `json:"category_id"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		PriceUnit   *string          `json:"price_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.PriceUnit != nil {
		product.PriceUnit = *req.PriceUnit
	}

	if err := pc.DB.Save(product).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Produit mis à jour", product)
}

// ToggleActive flips the soft-delete flag. Inactive products drop out of
// the menu builder but keep their history.
func (pc *ProductController) ToggleActive(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, pc.Restaurants)
	if !ok {
		return
	}
	productID, ok := uintParam(c, "product_id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.Catalog.GetProduct(restaurantID, productID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := pc.DB.Model(product).Update("is_active", *req.IsActive).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Produit mis à jour", gin.H{
		"product_id": product.ID,
		"is_active":  *req.IsActive,
	})
}

// DeleteProduct hard-deletes a product after verifying ownership.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, pc.Restaurants)
	if !ok {
		return
	}
	productID, ok := uintParam(c, "product_id")
	if !ok {
		return
	}

	product, err := pc.Catalog.GetProduct(restaurantID, productID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if err := pc.DB.Delete(product).Error; err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Produit supprimé", gin.H{"product_id": productID})
}
