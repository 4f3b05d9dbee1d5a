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
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// MeasurementInput defines the upsertable measurement fields
type MeasurementInput struct {
	Chest    *float64 `json:"chest"`
	Waist    *float64 `json:"waist"`
	Length   *float64 `json:"length"`
	Shoulder *float64 `json:"shoulder"`
	Sleeve   *float64 `json:"sleeve"`
	Notes    *string  `json:"notes"`
}

// CustomerInfo is the customer detail view: measurements plus every order on
// the customer's bills.
type CustomerInfo struct {
	CustomerName string              `json:"customer_name"`
	MobileNumber string              `json:"mobile_number"`
	Measurements *models.Measurement `json:"measurements"`
	OrderHistory []models.Order      `json:"order_history"`
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	var existingCustomer models.Customer
	if err := config.DB.Where("phone = ?", input.Phone).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers ordered by name, optionally narrowed
// by a ?q= search over name, phone and email.
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("name asc").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	customers = services.FilterBySearchTerm(customers, c.Query("q"), func(cu models.Customer) []string {
		return []string{cu.Name, cu.Phone, cu.Email}
	})

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(customerID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(customerID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		if customer.Phone != *input.Phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("phone = ?", *input.Phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer
func DeleteCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Delete(&models.Customer{}, uint(customerID))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetCustomerInfo returns the detail view for a mobile number: measurements
// (nil when none are on file) and the order history flattened from the
// customer's bills.
func GetCustomerInfo(c *gin.Context) {
	mobile := c.Param("mobile")

	var measurement models.Measurement
	var measurements *models.Measurement
	if err := config.DB.Where("phone_number = ?", mobile).
		First(&measurement).Error; err == nil {
		measurements = &measurement
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var bills []models.Bill
	if err := config.DB.Where("mobile_number = ?", mobile).Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}

	info := CustomerInfo{
		MobileNumber: mobile,
		Measurements: measurements,
		OrderHistory: []models.Order{},
	}

	if len(bills) > 0 {
		info.CustomerName = bills[0].CustomerName

		billIDs := make([]uint, 0, len(bills))
		for _, b := range bills {
			billIDs = append(billIDs, b.ID)
		}

		if err := config.DB.Where("bill_id IN ?", billIDs).
			Order("order_date desc").
			Find(&info.OrderHistory).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve order history")
			return
		}
	}

	c.JSON(http.StatusOK, info)
}

// UpdateMeasurements upserts the measurement record for a mobile number.
func UpdateMeasurements(c *gin.Context) {
	mobile := c.Param("mobile")

	var input MeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var measurement models.Measurement
	err := config.DB.Where("phone_number = ?", mobile).First(&measurement).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	measurement.PhoneNumber = mobile

	if input.Chest != nil {
		measurement.Chest = input.Chest
	}
	if input.Waist != nil {
		measurement.Waist = input.Waist
	}
	if input.Length != nil {
		measurement.Length = input.Length
	}
	if input.Shoulder != nil {
		measurement.Shoulder = input.Shoulder
	}
	if input.Sleeve != nil {
		measurement.Sleeve = input.Sleeve
	}
	if input.Notes != nil {
		measurement.Notes = *input.Notes
	}

	if err := config.DB.Save(&measurement).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save measurements")
		return
	}

	c.JSON(http.StatusOK, measurement)
}
