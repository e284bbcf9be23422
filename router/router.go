package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardoise/menu-du-jour/controllers"
	"github.com/ardoise/menu-du-jour/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	menuCtrl := controllers.NewDailyMenuController(db)
	inviteCtrl := controllers.NewInviteController(db)
	publicCtrl := controllers.NewPublicController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
		auth.POST("/invites/accept", inviteCtrl.AcceptInvite)
	}

	// Published menu page and PDF export, no session required
	r.GET("/menu/:slug", publicCtrl.GetPublicMenu)
	r.GET("/api/menu/pdf", publicCtrl.ExportPDF)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())

	dashboard.GET("/profile", userCtrl.GetProfile)
	dashboard.GET("/stats", menuCtrl.GetDashboardStats)

	// RESTAURANT
	dashboard.POST("/restaurant/init", restaurantCtrl.Initialize)
	dashboard.GET("/restaurant", restaurantCtrl.GetSettings)
	dashboard.PATCH("/restaurant", restaurantCtrl.UpdateSettings)
	dashboard.GET("/restaurant/slug", restaurantCtrl.GetSlug)

	// CATEGORIES
	dashboard.GET("/categories", categoryCtrl.GetCategories)
	dashboard.POST("/categories", categoryCtrl.CreateCategory)
	dashboard.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	dashboard.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	// PRODUCTS
	dashboard.GET("/products", productCtrl.GetProducts)
	dashboard.POST("/products", productCtrl.CreateProduct)
	dashboard.PATCH("/products/:product_id", productCtrl.UpdateProduct)
	dashboard.PATCH("/products/:product_id/active", productCtrl.ToggleActive)
	dashboard.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	// DAILY MENU
	dashboard.GET("/menu", menuCtrl.GetMenu)
	dashboard.PUT("/menu", menuCtrl.SaveMenu)
	dashboard.POST("/menu/publish", menuCtrl.Publish)
	dashboard.POST("/menu/show-prices", menuCtrl.ShowPrices)
	dashboard.POST("/menu/duplicate", menuCtrl.Duplicate)

	// INVITES
	dashboard.POST("/invites", inviteCtrl.CreateInvite)

	return r
}
