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

// CreateWorkerInput defines the expected JSON structure for creating a worker
type CreateWorkerInput struct {
	Name   string   `json:"name" binding:"required"`
	Phone  string   `json:"phone"`
	Rate   *float64 `json:"rate"`
	Suit   *float64 `json:"suit"`
	Jacket *float64 `json:"jacket"`
	Sadri  *float64 `json:"sadri"`
	Others *float64 `json:"others"`
}

// UpdateWorkerInput defines the expected JSON structure for updating a worker
type UpdateWorkerInput struct {
	Name   *string  `json:"name"`
	Phone  *string  `json:"phone"`
	Rate   *float64 `json:"rate"`
	Suit   *float64 `json:"suit"`
	Jacket *float64 `json:"jacket"`
	Sadri  *float64 `json:"sadri"`
	Others *float64 `json:"others"`
}

// CreateWorker creates a new worker
func CreateWorker(c *gin.Context) {
	var input CreateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	worker := models.Worker{
		Name:   input.Name,
		Phone:  input.Phone,
		Rate:   input.Rate,
		Suit:   input.Suit,
		Jacket: input.Jacket,
		Sadri:  input.Sadri,
		Others: input.Others,
	}

	if err := config.DB.Create(&worker).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create worker")
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// GetWorkers retrieves all workers, optionally narrowed by a ?q= search over
// name, phone and id.
func GetWorkers(c *gin.Context) {
	var workers []models.Worker
	if err := config.DB.Order("name asc").Find(&workers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve workers")
		return
	}

	workers = services.FilterBySearchTerm(workers, c.Query("q"), func(w models.Worker) []string {
		return []string{w.Name, w.Phone, strconv.FormatUint(uint64(w.ID), 10)}
	})

	c.JSON(http.StatusOK, workers)
}

// GetWorker retrieves a specific worker by ID
func GetWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid worker ID format")
		return
	}

	var worker models.Worker
	if err := config.DB.First(&worker, uint(workerID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Worker not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, worker)
}

// UpdateWorker updates an existing worker
func UpdateWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid worker ID format")
		return
	}

	var input UpdateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var worker models.Worker
	if err := config.DB.First(&worker, uint(workerID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Worker not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.Phone != nil {
		worker.Phone = *input.Phone
	}
	if input.Rate != nil {
		worker.Rate = input.Rate
	}
	if input.Suit != nil {
		worker.Suit = input.Suit
	}
	if input.Jacket != nil {
		worker.Jacket = input.Jacket
	}
	if input.Sadri != nil {
		worker.Sadri = input.Sadri
	}
	if input.Others != nil {
		worker.Others = input.Others
	}

	if err := config.DB.Save(&worker).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update worker")
		return
	}

	c.JSON(http.StatusOK, worker)
}

// DeleteWorker removes a worker and any order assignments pointing at them.
func DeleteWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid worker ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", uint(workerID)).
			Delete(&models.OrderWorkerAssociation{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Worker{}, uint(workerID))
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
			utils.RespondWithError(c, http.StatusNotFound, "Worker not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete worker")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}
