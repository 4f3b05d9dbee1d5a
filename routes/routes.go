package routes

import (
	"os"
	"strings"

	"tailorshop-backend/config"
	"tailorshop-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:19006"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/info/:mobile", controllers.GetCustomerInfo)
			customers.PUT("/info/:mobile/measurements", controllers.UpdateMeasurements)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Worker routes
		workers := api.Group("/workers")
		{
			workers.POST("", controllers.CreateWorker)
			workers.GET("", controllers.GetWorkers)
			workers.GET("/:id", controllers.GetWorker)
			workers.PUT("/:id", controllers.UpdateWorker)
			workers.DELETE("/:id", controllers.DeleteWorker)
		}

		// Bill routes
		bills := api.Group("/bills")
		{
			bills.POST("", controllers.CreateBill)
			bills.GET("", controllers.GetBills)
			bills.GET("/:id", controllers.GetBill)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
			orders.PUT("/:id/payment-mode", controllers.UpdatePaymentMode)
			orders.PUT("/:id/workers", controllers.AssignWorkers)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("/shop", controllers.CreateShopExpense)
			expenses.GET("/shop", controllers.GetShopExpenses)
			expenses.DELETE("/shop/:id", controllers.DeleteShopExpense)
			expenses.POST("/worker", controllers.CreateWorkerExpense)
			expenses.GET("/worker", controllers.GetWorkerExpenses)
			expenses.DELETE("/worker/:id", controllers.DeleteWorkerExpense)
		}

		// Aggregation routes
		api.GET("/profit", controllers.GetProfitSummary)
		api.GET("/weekly-pay", controllers.GetWorkerWeeklyPay)
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
