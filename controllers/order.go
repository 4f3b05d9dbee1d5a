package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/services"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// UpdateOrderStatusInput carries the single-field status update
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePaymentModeInput carries the single-field payment-mode update
type UpdatePaymentModeInput struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

// AssignWorkersInput carries the replacement worker set for an order
type AssignWorkersInput struct {
	WorkerIDs []uint `json:"worker_ids" binding:"required"`
}

// GetOrders returns every order enriched with its bill and assigned workers.
// The four backing tables are fetched concurrently and joined in-memory;
// the store only ever serves flat table reads. An optional ?q= narrows the
// orders to matching bill numbers before the join, and ?sort=bill_number
// switches the default order_date ordering to a numeric-aware bill-number
// sort.
func GetOrders(c *gin.Context) {
	var (
		orders       []models.Order
		bills        []models.Bill
		associations []models.OrderWorkerAssociation
		workers      []models.Worker
	)

	search := c.Query("q")

	var g errgroup.Group
	g.Go(func() error {
		query := config.DB.Order("order_date desc")
		if search != "" {
			query = query.Where("bill_number ILIKE ?", "%"+search+"%")
		}
		return query.Find(&orders).Error
	})
	g.Go(func() error {
		return config.DB.Find(&bills).Error
	})
	g.Go(func() error {
		return config.DB.Find(&associations).Error
	})
	g.Go(func() error {
		return config.DB.Find(&workers).Error
	})
	if err := g.Wait(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	if c.Query("sort") == "bill_number" {
		services.SortOrdersByBillNumber(orders)
	}

	enriched, err := services.JoinOrdersWithRelations(orders, bills, associations, workers)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to join orders")
		return
	}

	c.JSON(http.StatusOK, enriched)
}

// GetOrder returns a single enriched order.
func GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var bills []models.Bill
	if err := config.DB.Where("id = ?", order.BillID).Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var associations []models.OrderWorkerAssociation
	if err := config.DB.Where("order_id = ?", order.ID).Find(&associations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var workers []models.Worker
	if len(associations) > 0 {
		workerIDs := make([]uint, 0, len(associations))
		for _, a := range associations {
			workerIDs = append(workerIDs, a.WorkerID)
		}
		if err := config.DB.Where("id IN ?", workerIDs).Find(&workers).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	enriched, err := services.JoinOrdersWithRelations([]models.Order{order}, bills, associations, workers)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to join order")
		return
	}

	c.JSON(http.StatusOK, enriched[0])
}

// UpdateOrderStatus updates only the status field of an order.
func UpdateOrderStatus(c *gin.Context) {
	updateOrderField(c, func(input UpdateOrderStatusInput) map[string]interface{} {
		return map[string]interface{}{"status": input.Status}
	})
}

// UpdatePaymentMode updates only the payment_mode field of an order.
func UpdatePaymentMode(c *gin.Context) {
	updateOrderField(c, func(input UpdatePaymentModeInput) map[string]interface{} {
		return map[string]interface{}{"payment_mode": input.PaymentMode}
	})
}

func updateOrderField[T any](c *gin.Context, patch func(T) map[string]interface{}) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input T
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&order).Updates(patch(input)).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// AssignWorkers replaces an order's worker set: all existing associations for
// the order are deleted and the new set inserted, in one transaction. An
// empty worker_ids list clears the assignment.
func AssignWorkers(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input AssignWorkersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if len(input.WorkerIDs) > 0 {
		var count int64
		if err := config.DB.Model(&models.Worker{}).
			Where("id IN ?", input.WorkerIDs).Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if count != int64(len(input.WorkerIDs)) {
			utils.RespondWithError(c, http.StatusBadRequest, "One or more workers not found")
			return
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).
			Delete(&models.OrderWorkerAssociation{}).Error; err != nil {
			return err
		}
		for _, workerID := range input.WorkerIDs {
			assoc := models.OrderWorkerAssociation{OrderID: order.ID, WorkerID: workerID}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign workers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "worker_ids": input.WorkerIDs})
}

// DeleteOrder removes an order and its worker associations.
func DeleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", uint(orderID)).
			Delete(&models.OrderWorkerAssociation{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Order{}, uint(orderID))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
