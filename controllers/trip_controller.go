package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

type createTripReq struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Destination string  `json:"destination" binding:"required,min=1"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Notes       *string `json:"notes"`
}

func CreateTrip(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "start_date: " + err.Error()})
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "end_date: " + err.Error()})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "end_date must not be before start_date"})
		return
	}

	trip := models.Trip{
		HouseholdID: h.ID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	}

	if err := config.DB.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create trip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip created",
		"data":    trip,
	})
}

func ListTrips(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	query := config.DB.Model(&models.Trip{}).Where("household_id = ?", h.ID)

	search := c.Query("search")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(destination) LIKE ?", like, like)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int64
	query.Count(&total)

	sortOrder := strings.ToLower(c.DefaultQuery("sort_order", "asc")) // asc | desc
	orderClause := "start_date asc"
	if sortOrder == "desc" {
		orderClause = "start_date desc"
	}

	var trips []models.Trip
	if err := query.Offset(offset).Limit(limit).Order(orderClause).Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  trips,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetTripDetail returns the trip with its expenses (newest first), checklists
// with items, the inclusive duration and per-checklist progress.
func GetTripDetail(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	if err := config.DB.
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("date DESC, id DESC") }).
		Preload("Checklists", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("Checklists.Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		First(&trip, trip.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read trip"})
		return
	}

	start, err1 := utils.ParseDate(trip.StartDate)
	end, err2 := utils.ParseDate(trip.EndDate)
	duration := 0
	if err1 == nil && err2 == nil {
		duration = utils.DurationDays(start, end)
	}

	checklists := make([]gin.H, 0, len(trip.Checklists))
	for _, cl := range trip.Checklists {
		checklists = append(checklists, gin.H{
			"id":         cl.ID,
			"name":       cl.Name,
			"items":      cl.Items,
			"progress":   utils.ChecklistProgress(cl.Items),
			"created_at": cl.CreatedAt,
		})
	}

	total := 0.0
	for _, e := range trip.Expenses {
		total += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":            trip.ID,
			"name":          trip.Name,
			"destination":   trip.Destination,
			"start_date":    trip.StartDate,
			"end_date":      trip.EndDate,
			"notes":         trip.Notes,
			"duration_days": duration,
			"expenses":      utils.GroupExpensesByDate(trip.Expenses),
			"total_spent":   total,
			"checklists":    checklists,
			"created_at":    trip.CreatedAt,
			"updated_at":    trip.UpdatedAt,
		},
	})
}

type updateTripReq struct {
	Name        *string `json:"name"`
	Destination *string `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Notes       *string `json:"notes"`
}

// UpdateTrip is a merge patch: only supplied fields change. Dates are
// re-validated as a pair against the stored values.
func UpdateTrip(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	var req updateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Notes != nil {
		trip.Notes = req.Notes
	}

	start, err := utils.ParseDate(trip.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "start_date: " + err.Error()})
		return
	}
	end, err := utils.ParseDate(trip.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "end_date: " + err.Error()})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "end_date must not be before start_date"})
		return
	}

	if err := config.DB.Save(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trip updated",
		"data":    trip,
	})
}

// DeleteTrip removes the trip and its children in one transaction instead of
// trusting a cascade: items, checklists, expenses, then the trip row.
func DeleteTrip(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id IN (?)",
			tx.Model(&models.Checklist{}).Select("id").Where("trip_id = ?", trip.ID),
		).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.Checklist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Trip{}, trip.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
