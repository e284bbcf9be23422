package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ardoise/menu-du-jour/models"
	"github.com/ardoise/menu-du-jour/router"
	"github.com/ardoise/menu-du-jour/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
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
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok, "expected a data object, got: %s", w.Body.String())
	return data
}

// TestEndToEndIntegration walks the main flow: register an owner, initialize
// the restaurant, build a day's menu from the dashboard, then check the
// public page, the publish gate and the PDF export.
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	token := registerAndLogin(t, r)
	slug := initializeRestaurant(t, r, token)
	soupeID, steakID := createProducts(t, r, token)
	saveDay(t, r, token, soupeID, steakID)
	checkDraftPreview(t, r, slug)
	publishDay(t, r, token)
	checkPublicPage(t, r, slug)
	checkPDFExport(t, r, slug)
	hidePricesAndCheck(t, r, token, slug)
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	w := request(t, r, http.MethodPost, "/register", "", map[string]interface{}{
		"name":     "Marcel",
		"email":    "marcel@chezmarcel.fr",
		"password": "motdepasse",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "marcel@chezmarcel.fr",
		"password": "motdepasse",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token, ok := jsonData(t, w)["token"].(string)
	assert.True(t, ok)
	return token
}

func initializeRestaurant(t *testing.T, r *gin.Engine, token string) string {
	w := request(t, r, http.MethodPost, "/dashboard/restaurant/init", token, map[string]interface{}{
		"name": "Chez Marcel",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	slug, ok := jsonData(t, w)["slug"].(string)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(slug, "chez-marcel-"), slug)
	return slug
}

// createProducts adds Soupe under Entrée and Steak under Plat, using the
// category ids from the seeded taxonomy.
func createProducts(t *testing.T, r *gin.Engine, token string) (uint, uint) {
	w := request(t, r, http.MethodGet, "/dashboard/categories", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []models.Category `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))

	byName := map[string]uint{}
	for _, c := range listResp.Data {
		byName[c.Name] = c.ID
	}
	assert.Contains(t, byName, "Entrée")
	assert.Contains(t, byName, "Plat")

	create := func(name string, categoryID uint, price string) uint {
		w := request(t, r, http.MethodPost, "/dashboard/products", token, map[string]interface{}{
			"name":        name,
			"category_id": categoryID,
			"price":       price,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		id, ok := jsonData(t, w)["id"].(float64)
		assert.True(t, ok)
		return uint(id)
	}

	soupeID := create("Soupe", byName["Entrée"], "6.00")
	steakID := create("Steak", byName["Plat"], "18.50")
	return soupeID, steakID
}

func saveDay(t *testing.T, r *gin.Engine, token string, soupeID, steakID uint) {
	w := request(t, r, http.MethodPut, "/dashboard/menu", token, map[string]interface{}{
		"date":        "2024-01-15",
		"product_ids": []uint{soupeID, steakID},
		"orders": map[string]int{
			fmt.Sprint(soupeID): 0,
			fmt.Sprint(steakID): 0,
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, jsonData(t, w)["item_count"])
}

// checkDraftPreview: with an explicit date the unpublished menu is visible
// and flagged as a preview.
func checkDraftPreview(t *testing.T, r *gin.Engine, slug string) {
	w := request(t, r, http.MethodGet, "/menu/"+slug+"?date=2024-01-15", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := jsonData(t, w)
	assert.Equal(t, true, data["has_menu"])
	assert.Equal(t, true, data["preview"])
}

func publishDay(t *testing.T, r *gin.Engine, token string) {
	w := request(t, r, http.MethodPost, "/dashboard/menu/publish", token, map[string]interface{}{
		"date":    "2024-01-15",
		"publish": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func checkPublicPage(t *testing.T, r *gin.Engine, slug string) {
	w := request(t, r, http.MethodGet, "/menu/"+slug+"?date=2024-01-15", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := jsonData(t, w)
	assert.Equal(t, true, data["has_menu"])
	assert.Equal(t, false, data["preview"])
	assert.Equal(t, "Menu du jour - Chez Marcel", data["title"])

	view := data["view"].(map[string]interface{})
	assert.Equal(t, "lundi 15 janvier", view["date_long"])

	groups := view["groups"].([]interface{})
	assert.Len(t, groups, 2)

	entrees := groups[0].(map[string]interface{})
	assert.Equal(t, "Entrées", entrees["title"])
	soupe := entrees["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Soupe", soupe["name"])
	assert.Equal(t, "6,00 €", soupe["price"])

	plats := groups[1].(map[string]interface{})
	assert.Equal(t, "Plats", plats["title"])
	steak := plats["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Steak", steak["name"])
	assert.Equal(t, "18,50 €", steak["price"])
}

func checkPDFExport(t *testing.T, r *gin.Engine, slug string) {
	w := request(t, r, http.MethodGet, "/api/menu/pdf?slug="+slug+"&date=2024-01-15", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "menu-"+slug+"-20240115.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

// hidePricesAndCheck: flipping show_prices removes every price label from
// the public payload while the items stay.
func hidePricesAndCheck(t *testing.T, r *gin.Engine, token, slug string) {
	w := request(t, r, http.MethodPost, "/dashboard/menu/show-prices", token, map[string]interface{}{
		"date":        "2024-01-15",
		"show_prices": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, http.MethodGet, "/menu/"+slug+"?date=2024-01-15", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	view := jsonData(t, w)["view"].(map[string]interface{})
	for _, g := range view["groups"].([]interface{}) {
		for _, it := range g.(map[string]interface{})["items"].([]interface{}) {
			item := it.(map[string]interface{})
			assert.NotEmpty(t, item["name"])
			_, hasPrice := item["price"]
			assert.False(t, hasPrice, "price should be omitted when hidden")
		}
	}
}
