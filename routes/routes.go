package routes

import (
	"os"
	"strings"

	"carwash-backend/config"
	"carwash-backend/controllers"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(manager *store.Manager) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(manager)
	serviceController := controllers.NewServiceController(manager)
	configController := controllers.NewServiceConfigController(manager)
	staffController := controllers.NewStaffController(manager)
	inventoryController := controllers.NewInventoryController(manager)
	productTypeController := controllers.NewProductTypeController(manager)
	expenseController := controllers.NewExpenseController(manager)
	reportController := controllers.NewReportController(manager)

	// Public routes render regardless of auth state.
	r.GET("/health", controllers.Health)
	r.GET("/about", controllers.About)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/session", authController.Session)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
		auth.PUT("/language", authController.UpdateLanguage)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service record routes; records are immutable, so no PUT/DELETE.
		services := api.Group("/services")
		{
			services.POST("", serviceController.Create)
			services.GET("", serviceController.List)
			services.GET("/all", serviceController.ListAll)
		}

		// Service-type configuration routes
		serviceConfigs := api.Group("/service-configs")
		{
			serviceConfigs.GET("", configController.List)
			serviceConfigs.POST("", configController.Create)
			serviceConfigs.PUT("/:id", configController.Update)
			serviceConfigs.DELETE("/:id", configController.Delete)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.GET("", staffController.List)
			staff.POST("", staffController.Create)
			staff.DELETE("/:id", staffController.Delete)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryController.List)
			inventory.POST("", inventoryController.Create)
			inventory.PUT("/:id", inventoryController.Update)
			inventory.DELETE("/:id", inventoryController.Delete)
		}

		productTypes := api.Group("/product-types")
		{
			productTypes.GET("", productTypeController.List)
			productTypes.POST("", productTypeController.Create)
			productTypes.PUT("/:id", productTypeController.Update)
			productTypes.DELETE("/:id", productTypeController.Delete)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.GET("", expenseController.List)
			expenses.POST("", expenseController.Create)
			expenses.DELETE("/:id", expenseController.Delete)
		}

		// Report routes
		api.GET("/reports/daily", reportController.Daily)
		api.GET("/reports/export", reportController.Export)
	}

	return r
}
