package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

// GetYearlyStats sums spending across all trips starting in the given year,
// broken down by category.
func GetYearlyStats(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
		return
	}

	startOfYear := fmt.Sprintf("%04d-01-01", year)
	endOfYear := fmt.Sprintf("%04d-12-31", year)

	var trips []models.Trip
	if err := config.DB.
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Where("household_id = ? AND start_date >= ? AND start_date <= ?", h.ID, startOfYear, endOfYear).
		Order("start_date ASC").
		Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load trips"})
		return
	}

	var all []models.Expense
	for _, t := range trips {
		all = append(all, t.Expenses...)
	}

	totalSpent := 0.0
	for _, e := range all {
		totalSpent += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"year":        year,
		"trips":       trips,
		"total_trips": len(trips),
		"total_spent": totalSpent,
		"by_category": utils.SumByCategory(all),
	})
}
