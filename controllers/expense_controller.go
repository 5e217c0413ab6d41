package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

type createExpenseReq struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Currency    string   `json:"currency" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description *string  `json:"description"`
	Date        string   `json:"date" binding:"required"`
}

func CreateExpense(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	if *req.Amount < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "amount must not be negative"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "unknown category"})
		return
	}
	if !models.ValidCurrency(req.Currency) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "unknown currency"})
		return
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "date: " + err.Error()})
		return
	}

	exp := models.Expense{
		TripID:      trip.ID,
		Amount:      *req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := config.DB.Create(&exp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create expense"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense created",
		"data":    exp,
	})
}

type updateExpenseReq struct {
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func UpdateExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	exp, ok := middleware.TripForExpense(c, id)
	if !ok {
		return
	}

	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "amount must not be negative"})
			return
		}
		exp.Amount = *req.Amount
	}
	if req.Currency != nil {
		if !models.ValidCurrency(*req.Currency) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "unknown currency"})
			return
		}
		exp.Currency = *req.Currency
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "unknown category"})
			return
		}
		exp.Category = *req.Category
	}
	if req.Description != nil {
		exp.Description = req.Description
	}
	if req.Date != nil {
		if _, err := utils.ParseDate(*req.Date); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "date: " + err.Error()})
			return
		}
		exp.Date = *req.Date
	}

	if err := config.DB.Save(exp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Expense updated",
		"data":    exp,
	})
}

func DeleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	exp, ok := middleware.TripForExpense(c, id)
	if !ok {
		return
	}

	if err := config.DB.Delete(&models.Expense{}, exp.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// UploadReceipt attaches a receipt image to an expense via the storage bucket.
func UploadReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	exp, ok := middleware.TripForExpense(c, id)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file received"})
		return
	}

	fileID := fmt.Sprintf("%d_%d", exp.ID, time.Now().UnixNano())
	publicURL, err := utils.UploadReceipt(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}

	exp.ReceiptURL = &publicURL
	if err := config.DB.Save(exp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save receipt URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt uploaded",
		"url":     publicURL,
	})
}
