package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

type RestaurantController struct {
	DB          *gorm.DB
	Restaurants *store.RestaurantStore
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		DB:          db,
		Restaurants: store.NewRestaurantStore(db),
	}
}

// Initialize creates the caller's restaurant, links them as owner and seeds
// the default catalog. Calling it again once products exist is refused.
func (rc *RestaurantController) Initialize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, store.ErrNotAuthenticated)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	// Body is optional, the name falls back to "Mon Restaurant"
	_ = c.ShouldBindJSON(&req)

	restaurant, err := rc.Restaurants.Initialize(userID, req.Name)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant initialized: %s (slug=%s)", restaurant.Name, restaurant.Slug)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant initialisé", restaurant)
}

// GetSettings returns the restaurant record including the design bundle.
func (rc *RestaurantController) GetSettings(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, rc.Restaurants)
	if !ok {
		return
	}

	restaurant, err := rc.Restaurants.GetByID(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Paramètres", restaurant)
}

// UpdateSettings mutates the design bundle. Owner or admin only; staff get
// 403, which is distinct from the 401 of a missing session.
func (rc *RestaurantController) UpdateSettings(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, rc.Restaurants)
	if !ok {
		return
	}

	role := c.GetString("role")
	if role != "owner" && role != "admin" {
		utils.RespondError(c, http.StatusForbidden, store.ErrNotAuthorized)
		return
	}

	var req store.DesignUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.Restaurants.UpdateDesign(restaurantID, req); err != nil {
		respondStoreError(c, err)
		return
	}

	restaurant, err := rc.Restaurants.GetByID(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Paramètres mis à jour", restaurant)
}

// GetSlug returns the public slug, used by the dashboard to build share and
// PDF links.
func (rc *RestaurantController) GetSlug(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, rc.Restaurants)
	if !ok {
		return
	}

	restaurant, err := rc.Restaurants.GetByID(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if restaurant.Slug == "" {
		utils.RespondError(c, http.StatusNotFound, errors.New("aucun slug configuré"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Slug", gin.H{"slug": restaurant.Slug})
}
