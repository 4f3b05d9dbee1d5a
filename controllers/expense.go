package controllers

import (
	"net/http"
	"strconv"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/services"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateShopExpenseInput defines the expected JSON structure for a shop expense
type CreateShopExpenseInput struct {
	Date              string   `json:"date" binding:"required"`
	MaterialType      string   `json:"material_type"`
	MaterialCost      *float64 `json:"material_cost"`
	MiscellaneousItem string   `json:"miscellaneous_item"`
	MiscellaneousCost *float64 `json:"miscellaneous_cost"`
	ChaiPaniCost      *float64 `json:"chai_pani_cost"`
}

// CreateWorkerExpenseInput defines the expected JSON structure for a worker payment
type CreateWorkerExpenseInput struct {
	WorkerID   uint     `json:"worker_id" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Name       string   `json:"name"`
	AmountPaid *float64 `json:"amount_paid" binding:"required"`
}

// CreateShopExpense records a day's shop spend.
func CreateShopExpense(c *gin.Context) {
	var input CreateShopExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	expense := models.ShopExpense{
		Date:              date,
		MaterialType:      input.MaterialType,
		MaterialCost:      input.MaterialCost,
		MiscellaneousItem: input.MiscellaneousItem,
		MiscellaneousCost: input.MiscellaneousCost,
		ChaiPaniCost:      input.ChaiPaniCost,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetShopExpenses retrieves shop expenses newest first, with an optional
// ?date= filter and a ?q= search over the item descriptions. The response
// includes the running total of the returned rows.
func GetShopExpenses(c *gin.Context) {
	query := config.DB.Order("date desc")
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ? AND date < ?", date, date.AddDate(0, 0, 1))
	}

	var expenses []models.ShopExpense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	expenses = services.FilterBySearchTerm(expenses, c.Query("q"), func(e models.ShopExpense) []string {
		return []string{e.MaterialType, e.MiscellaneousItem}
	})

	summary := services.ComputeProfitSummary(nil, expenses, nil)

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"total":    summary.DailyExpenses,
	})
}

// DeleteShopExpense removes a shop expense by id.
func DeleteShopExpense(c *gin.Context) {
	expenseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	result := config.DB.Delete(&models.ShopExpense{}, uint(expenseID))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// CreateWorkerExpense records a payment to a worker.
func CreateWorkerExpense(c *gin.Context) {
	var input CreateWorkerExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var worker models.Worker
	if err := config.DB.First(&worker, input.WorkerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Worker not found")
		return
	}

	expense := models.WorkerExpense{
		WorkerID:   input.WorkerID,
		Date:       date,
		Name:       input.Name,
		AmountPaid: input.AmountPaid,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetWorkerExpenses retrieves worker payments newest first, with optional
// ?worker_id= and ?date= filters and a ?q= search over the description.
func GetWorkerExpenses(c *gin.Context) {
	query := config.DB.Order("date desc")
	if workerIDStr := c.Query("worker_id"); workerIDStr != "" {
		workerID, err := strconv.ParseUint(workerIDStr, 10, 32)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid worker_id")
			return
		}
		query = query.Where("worker_id = ?", uint(workerID))
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ? AND date < ?", date, date.AddDate(0, 0, 1))
	}

	var expenses []models.WorkerExpense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	expenses = services.FilterBySearchTerm(expenses, c.Query("q"), func(e models.WorkerExpense) []string {
		return []string{e.Name, e.Date.Format(utils.DateLayout)}
	})

	total := 0.0
	for _, e := range expenses {
		if e.AmountPaid != nil {
			total += *e.AmountPaid
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"total":    services.Round2(total),
	})
}

// DeleteWorkerExpense removes a worker payment by id.
func DeleteWorkerExpense(c *gin.Context) {
	expenseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	result := config.DB.Delete(&models.WorkerExpense{}, uint(expenseID))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
