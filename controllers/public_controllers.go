package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/menu"
	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/pdf"
	"github.com/ardoise/menu-du-jour/store"
	"github.com/ardoise/menu-du-jour/utils"
)

// pdfTimeout is the render budget for one export.
const pdfTimeout = 30 * time.Second

type PublicController struct {
	DB          *gorm.DB
	Restaurants *store.RestaurantStore
	Menus       *store.MenuStore
	Catalog     *store.CatalogStore
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{
		DB:          db,
		Restaurants: store.NewRestaurantStore(db),
		Menus:       store.NewMenuStore(db),
		Catalog:     store.NewCatalogStore(db),
	}
}

func designFromRestaurant(r *models.Restaurant) menu.Design {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return menu.Design{
		OpeningDays:   str(r.OpeningDays),
		OpeningDays2:  str(r.OpeningDays2),
		LunchHours:    str(r.LunchHours),
		DinnerHours:   str(r.DinnerHours),
		HolidayNotice: str(r.HolidayNotice),
		MeatOrigin:    str(r.MeatOrigin),
		PaymentNotice: str(r.PaymentNotice),
		Subtitle:      str(r.Subtitle),
		Type:          str(r.RestaurantType),
		Cities:        str(r.Cities),
		SidesNote:     str(r.SidesNote),
	}
}

// loadView assembles the rendering engine input for one restaurant and
// date. The preview/public branch lives here: includeUnpublished is true
// only when the request carried an explicit date. Returns (nil, nil) when
// no visible menu exists for the date.
func (pc *PublicController) loadView(r *models.Restaurant, date string, includeUnpublished bool) (*menu.View, error) {
	m, err := pc.Menus.GetMenu(r.ID, date)
	if err != nil {
		return nil, err
	}
	if m == nil || (!m.IsPublished && !includeUnpublished) {
		return nil, nil
	}

	categories, err := pc.Catalog.ListCategories(r.ID)
	if err != nil {
		return nil, err
	}

	engineCategories := make([]menu.Category, 0, len(categories))
	for _, c := range categories {
		engineCategories = append(engineCategories, menu.Category{
			ID:           c.ID,
			Name:         c.Name,
			DisplayOrder: c.DisplayOrder,
		})
	}

	items := make([]menu.Item, 0, len(m.Items))
	for _, it := range m.Items {
		desc := ""
		if it.Product.Description != nil {
			desc = *it.Product.Description
		}
		items = append(items, menu.Item{
			Name:         it.Product.Name,
			Description:  desc,
			Price:        menu.EffectivePrice(it.CustomPrice, it.Product.Price),
			PriceUnit:    it.Product.PriceUnit,
			CategoryID:   it.Product.CategoryID,
			DisplayOrder: it.DisplayOrder,
		})
	}

	view := menu.BuildView(menu.Input{
		RestaurantName: r.Name,
		Design:         designFromRestaurant(r),
		Date:           date,
		Categories:     engineCategories,
		Items:          items,
		ShowPrices:     m.ShowPrices,
		IsPublished:    m.IsPublished,
	})
	return &view, nil
}

// GetPublicMenu serves GET /menu/:slug?date=YYYY-MM-DD&print={0|1}.
//
// With an explicit date the caller is previewing and unpublished menus are
// visible; without one only published menus ever show, today implied. The
// print flag selects the single-page print payload; grouping and prices are
// identical either way since both come from the same view.
func (pc *PublicController) GetPublicMenu(c *gin.Context) {
	slug := c.Param("slug")

	restaurant, err := pc.Restaurants.GetBySlug(slug)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	dateParam := c.Query("date")
	date := dateParam
	if date == "" {
		date = utils.TodayString()
	} else if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	view, err := pc.loadView(restaurant, date, dateParam != "")
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if view == nil {
		utils.RespondJSON(c, http.StatusOK, "Aucun menu disponible pour le "+utils.FormatDateLong(date), gin.H{
			"restaurant_name": restaurant.Name,
			"date":            date,
			"date_long":       utils.FormatDateLong(date),
			"has_menu":        false,
		})
		return
	}

	payload := gin.H{
		"title":    "Menu du jour - " + restaurant.Name,
		"has_menu": true,
		"preview":  !view.IsPublished,
		"print":    c.Query("print") == "1",
		"view":     view,
	}
	if c.Query("print") == "1" {
		// The print layout also carries the design boilerplate
		payload["design"] = view.Design
	}
	utils.RespondJSON(c, http.StatusOK, "Menu du "+view.DateLong, payload)
}

// ExportPDF serves GET /api/menu/pdf?slug=...&date=YYYY-MM-DD.
//
// 400 on a malformed date, 404 when the restaurant, menu or items are
// missing, 500 with a JSON error when rendering fails. Success streams
// application/pdf as an attachment.
func (pc *PublicController) ExportPDF(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("le paramètre 'slug' est requis"))
		return
	}

	date := c.Query("date")
	if date == "" {
		date = utils.TodayString()
	} else if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("format de date invalide, utilisez YYYY-MM-DD"))
		return
	}

	restaurant, err := pc.Restaurants.GetBySlug(slug)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	// The export always carries a concrete date, so drafts are printable.
	view, err := pc.loadView(restaurant, date, true)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if view == nil || (len(view.Groups) == 0 && len(view.Beverages) == 0) {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("aucun menu trouvé pour le %s", date))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pdfTimeout)
	defer cancel()

	data, err := pdf.Generate(ctx, *view)
	if err != nil {
		utils.ErrorLogger.Printf("PDF generation failed for %s/%s: %v", slug, date, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("erreur lors de la génération du PDF"))
		return
	}

	filename := fmt.Sprintf("menu-%s-%s.pdf", restaurant.Slug, strings.ReplaceAll(date, "-", ""))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", data)
}
