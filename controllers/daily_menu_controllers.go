package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

type DailyMenuController struct {
	DB          *gorm.DB
	Menus       *store.MenuStore
	Restaurants *store.RestaurantStore
}

func NewDailyMenuController(db *gorm.DB) *DailyMenuController {
	return &DailyMenuController{
		DB:          db,
		Menus:       store.NewMenuStore(db),
		Restaurants: store.NewRestaurantStore(db),
	}
}

// queryDate validates the ?date= parameter, defaulting to today.
func queryDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return utils.TodayString(), true
	}
	if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return "", false
	}
	return date, true
}

// GetMenu returns the menu for a date. No menu for the date is a valid
// empty state, not an error.
func (dc *DailyMenuController) GetMenu(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}
	date, ok := queryDate(c)
	if !ok {
		return
	}

	m, err := dc.Menus.GetMenu(restaurantID, date)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu du "+date, gin.H{
		"date":  date,
		"label": utils.RelativeDateLabel(date),
		"menu":  m, // nil when no menu has been saved for this date
	})
}

// SaveMenu replaces the date's full selection: the serialized command
// object carries the selected product ids, their per-category orders and
// the optional show_prices flag.
func (dc *DailyMenuController) SaveMenu(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}

	var req struct {
		Date       string       `json:"date" binding:"required"`
		ProductIDs []uint       `json:"product_ids"`
		Orders     map[uint]int `json:"orders"`
		ShowPrices *bool        `json:"show_prices"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !utils.IsValidDate(req.Date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	menuID, err := dc.Menus.SaveMenu(restaurantID, req.Date, req.ProductIDs, req.Orders, store.SaveOptions{
		ShowPrices: req.ShowPrices,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu enregistré", gin.H{
		"menu_id":    menuID,
		"item_count": len(req.ProductIDs),
	})
}

// Publish flips the date's publish flag; a date with no menu is a no-op.
func (dc *DailyMenuController) Publish(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}

	var req struct {
		Date    string `json:"date" binding:"required"`
		Publish *bool  `json:"publish" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !utils.IsValidDate(req.Date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	if err := dc.Menus.SetPublished(restaurantID, req.Date, *req.Publish); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Publication mise à jour", gin.H{
		"date":      req.Date,
		"published": *req.Publish,
	})
}

// ShowPrices flips the per-day price visibility, same no-op semantics.
func (dc *DailyMenuController) ShowPrices(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}

	var req struct {
		Date       string `json:"date" binding:"required"`
		ShowPrices *bool  `json:"show_prices" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !utils.IsValidDate(req.Date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	if err := dc.Menus.SetShowPrices(restaurantID, req.Date, *req.ShowPrices); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Affichage des prix mis à jour", gin.H{
		"date":        req.Date,
		"show_prices": *req.ShowPrices,
	})
}

// Duplicate copies a source date's selection into a target date. The
// source is whatever the client was viewing ("hier" relative to the edited
// date, not to real today). A target already holding items requires
// confirm_overwrite=true; the first call then returns
// needs_confirmation=true without touching anything.
func (dc *DailyMenuController) Duplicate(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}

	var req struct {
		SourceDate       string `json:"source_date" binding:"required"`
		TargetDate       string `json:"target_date" binding:"required"`
		ConfirmOverwrite bool   `json:"confirm_overwrite"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !utils.IsValidDate(req.SourceDate) || !utils.IsValidDate(req.TargetDate) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	result, err := dc.Menus.Duplicate(restaurantID, req.SourceDate, req.TargetDate, req.ConfirmOverwrite)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	message := "Menu dupliqué"
	if result.NeedsConfirmation {
		message = "Le menu cible contient déjà des items"
	}
	utils.RespondJSON(c, http.StatusOK, message, result)
}

// GetDashboardStats aggregates the catalog and today's menu for the
// dashboard, computed at call time.
func (dc *DailyMenuController) GetDashboardStats(c *gin.Context) {
	restaurantID, ok := requireRestaurant(c, dc.Restaurants)
	if !ok {
		return
	}

	stats, err := dc.Menus.DashboardStats(restaurantID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Statistiques", stats)
}
