package controllers

import (
	"net/http"
	"strconv"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/services"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GetWorkerWeeklyPay returns every worker's pay summary plus shop-wide
// totals and the current week's date range. A ?q= narrows the worker set by
// name, phone or id before the summaries are computed.
func GetWorkerWeeklyPay(c *gin.Context) {
	var (
		workers      []models.Worker
		associations []models.OrderWorkerAssociation
		orders       []models.Order
		expenses     []models.WorkerExpense
	)

	var g errgroup.Group
	g.Go(func() error { return config.DB.Find(&workers).Error })
	g.Go(func() error { return config.DB.Find(&associations).Error })
	g.Go(func() error { return config.DB.Find(&orders).Error })
	g.Go(func() error { return config.DB.Find(&expenses).Error })
	if err := g.Wait(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve weekly pay data")
		return
	}

	workers = services.FilterBySearchTerm(workers, c.Query("q"), func(w models.Worker) []string {
		return []string{w.Name, w.Phone, strconv.FormatUint(uint64(w.ID), 10)}
	})

	summaries, err := services.ComputeWorkerWeeklyPay(workers, associations, orders, expenses)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute weekly pay")
		return
	}

	totalWorkPay := 0.0
	totalPaid := 0.0
	for _, s := range summaries {
		totalWorkPay += s.TotalWorkPay
		totalPaid += s.TotalPaid
	}

	weekStart, weekEnd := utils.WeekRange(time.Now())

	c.JSON(http.StatusOK, gin.H{
		"week_start":     weekStart.Format(utils.DateLayout),
		"week_end":       weekEnd.Format(utils.DateLayout),
		"workers":        summaries,
		"total_work_pay": services.Round2(totalWorkPay),
		"total_paid":     services.Round2(totalPaid),
		"total_pending":  services.Round2(totalWorkPay - totalPaid),
	})
}
