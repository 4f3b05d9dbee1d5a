package controllers

import (
	"net/http"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/services"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetProfitSummary returns revenue, expenses and net profit, either all-time
// or for a single ?date=YYYY-MM-DD. Date filtering happens here at the store;
// the aggregation itself only ever sees pre-filtered collections. Orders are
// matched on the day they were last updated, which is when a payment would
// have been recorded; dates are interpreted in server-local time.
func GetProfitSummary(c *gin.Context) {
	var (
		orders         []models.Order
		shopExpenses   []models.ShopExpense
		workerExpenses []models.WorkerExpense
	)

	ordersQuery := config.DB.Session(&gorm.Session{})
	shopQuery := config.DB.Session(&gorm.Session{})
	workerQuery := config.DB.Session(&gorm.Session{})

	label := "All Time"
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		next := date.AddDate(0, 0, 1)
		ordersQuery = ordersQuery.Where("updated_at >= ? AND updated_at < ?", date, next)
		shopQuery = shopQuery.Where("date >= ? AND date < ?", date, next)
		workerQuery = workerQuery.Where("date >= ? AND date < ?", date, next)
		label = dateStr
	}

	var g errgroup.Group
	g.Go(func() error { return ordersQuery.Find(&orders).Error })
	g.Go(func() error { return shopQuery.Find(&shopExpenses).Error })
	g.Go(func() error { return workerQuery.Find(&workerExpenses).Error })
	if err := g.Wait(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve profit data")
		return
	}

	summary := services.ComputeProfitSummary(orders, shopExpenses, workerExpenses)
	summary.Date = label

	c.JSON(http.StatusOK, summary)
}
