package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// workPayRate is the share of an order's total allocated as worker pay,
// fixed at bill-creation time.
const workPayRate = 0.30

// CreateBillInput defines the expected JSON structure for the bill-creation
// flow. The bill, its order and the worker assignments are created together.
type CreateBillInput struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	MobileNumber  string  `json:"mobile_number" binding:"required"`
	BillNumber    string  `json:"bill_number"`
	GarmentType   string  `json:"garment_type" binding:"required"`
	TotalAmt      float64 `json:"total_amt" binding:"required,gt=0"`
	PaymentAmount float64 `json:"payment_amount" binding:"min=0"`
	PaymentStatus string  `json:"payment_status" binding:"omitempty,oneof=paid unpaid partial pending"`
	Status        string  `json:"status"`
	OrderDate     string  `json:"order_date" binding:"required"`
	DueDate       string  `json:"due_date" binding:"required"`
	WorkerIDs     []uint  `json:"worker_ids"`
}

// generateBillNumber makes a server-side bill number when the client does not
// supply one.
func generateBillNumber() string {
	return fmt.Sprintf("BILL-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// CreateBill creates a bill, derives its order with the fixed work-pay share,
// and assigns the selected workers, all in one transaction.
func CreateBill(c *gin.Context) {
	var input CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	orderDate, err := utils.ParseDate(input.OrderDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order_date, expected YYYY-MM-DD")
		return
	}
	dueDate, err := utils.ParseDate(input.DueDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	billNumber := input.BillNumber
	if billNumber == "" {
		billNumber = generateBillNumber()
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}

	// Validate worker ids up front so the transaction cannot half-apply.
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

	bill := models.Bill{
		CustomerName:  input.CustomerName,
		MobileNumber:  input.MobileNumber,
		BillNumber:    billNumber,
		TotalAmt:      input.TotalAmt,
		PaymentAmount: input.PaymentAmount,
		PaymentStatus: paymentStatus,
		Status:        status,
		OrderDate:     orderDate,
		DueDate:       dueDate,
	}

	var order models.Order
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}

		workPay := input.TotalAmt * workPayRate
		order = models.Order{
			BillID:        bill.ID,
			BillNumber:    billNumber,
			GarmentType:   input.GarmentType,
			TotalAmt:      input.TotalAmt,
			PaymentAmount: input.PaymentAmount,
			PaymentStatus: paymentStatus,
			Status:        status,
			OrderDate:     orderDate,
			DueDate:       dueDate,
			WorkPay:       &workPay,
		}
		if err := tx.Create(&order).Error; err != nil {
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
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill, "order": order})
}

// GetBills retrieves all bills, most recent first.
func GetBills(c *gin.Context) {
	var bills []models.Bill
	if err := config.DB.Order("order_date desc").Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}

	c.JSON(http.StatusOK, bills)
}

// GetBill retrieves a specific bill with its orders.
func GetBill(c *gin.Context) {
	billID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid bill ID format")
		return
	}

	var bill models.Bill
	if err := config.DB.First(&bill, uint(billID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var orders []models.Order
	if err := config.DB.Where("bill_id = ?", bill.ID).Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill, "orders": orders})
}
