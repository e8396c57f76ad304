package main

import (
	"fmt"
	"os"

	"carwash-backend/config"
	"carwash-backend/gateway"
	"carwash-backend/models"
	"carwash-backend/routes"
	"carwash-backend/services"
	"carwash-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ServiceRecord{},
		&models.ServiceConfig{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.ProductType{},
		&models.Expense{},
		&models.AlertLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	gw := gateway.NewGormGateway(config.DB)
	manager := store.NewManager(gw, logrus.WithField("component", "store"))

	alerts := services.NewAlertService(config.DB)
	alerts.StartScheduler()

	r := routes.SetupRouter(manager)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
