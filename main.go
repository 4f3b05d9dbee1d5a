package main

import (
	"fmt"
	"log"
	"os"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/routes"
	"tailorshop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Measurement{},
		&models.Bill{},
		&models.Order{},
		&models.OrderWorkerAssociation{},
		&models.Worker{},
		&models.ShopExpense{},
		&models.WorkerExpense{},
		&models.ReminderLog{},
	)
}

func main() {
	if os.Getenv("DUE_REMINDERS_ENABLED") == "true" {
		reminders := services.NewDueReminderService(config.DB)
		reminders.StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
