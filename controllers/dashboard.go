package controllers

import (
	"fmt"
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpcomingDueOrder is one order approaching its due date, with a short label
// for the screen ("Today", "Tomorrow", "3 days").
type UpcomingDueOrder struct {
	OrderID      uint   `json:"order_id"`
	BillNumber   string `json:"bill_number"`
	CustomerName string `json:"customer_name"`
	GarmentType  string `json:"garment_type"`
	DueDate      string `json:"due_date"`
	DueIn        string `json:"due_in"`
}

// GetDashboardOverview composes the home-screen numbers: customer and order
// counts, this month's paid revenue, and orders due within the next 7 days.
func GetDashboardOverview(c *gin.Context) {
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Count(&totalCustomers)

	var totalOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)

	var pendingOrders int64
	config.DB.Model(&models.Order{}).
		Where("LOWER(status) NOT IN ('completed', 'delivered')").
		Count(&pendingOrders)

	// This month's revenue, paid orders only
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyRevenue float64
	config.DB.Model(&models.Order{}).
		Where("LOWER(payment_status) = 'paid' AND order_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(total_amt), 0)").Scan(&monthlyRevenue)

	// Orders due in the next 7 days, with their bill's customer name
	today := utils.BeginningOfDay(now)
	var dueOrders []models.Order
	config.DB.
		Where("due_date >= ? AND due_date < ? AND LOWER(status) NOT IN ('completed', 'delivered')",
			today, today.AddDate(0, 0, 7)).
		Order("due_date asc").
		Find(&dueOrders)

	upcoming := make([]UpcomingDueOrder, 0, len(dueOrders))
	for _, order := range dueOrders {
		var bill models.Bill
		customerName := ""
		if err := config.DB.First(&bill, order.BillID).Error; err == nil {
			customerName = bill.CustomerName
		}

		daysUntil := utils.DaysBetween(today, order.DueDate)
		var label string
		switch daysUntil {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", daysUntil)
		}

		upcoming = append(upcoming, UpcomingDueOrder{
			OrderID:      order.ID,
			BillNumber:   order.BillNumber,
			CustomerName: customerName,
			GarmentType:  order.GarmentType,
			DueDate:      order.DueDate.Format(utils.DateLayout),
			DueIn:        label,
		})
		if len(upcoming) >= 7 {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":  totalCustomers,
		"totalOrders":     totalOrders,
		"pendingOrders":   pendingOrders,
		"monthlyRevenue":  monthlyRevenue,
		"upcomingDueOrders": gin.H{
			"count": len(upcoming),
			"list":  upcoming,
		},
	})
}
