package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
)

type createChecklistReq struct {
	Name string `json:"name" binding:"required,min=1"`
}

func CreateChecklist(c *gin.Context) {
	trip := c.MustGet(middleware.CtxTrip).(models.Trip)

	var req createChecklistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	cl := models.Checklist{TripID: trip.ID, Name: req.Name}
	if err := config.DB.Create(&cl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create checklist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checklist created",
		"data":    cl,
	})
}

// DeleteChecklist removes the checklist and its items in one transaction.
func DeleteChecklist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	cl, ok := middleware.TripForChecklist(c, id)
	if !ok {
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id = ?", cl.ID).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Checklist{}, cl.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete checklist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checklist deleted"})
}

type createItemReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func CreateChecklistItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	cl, ok := middleware.TripForChecklist(c, id)
	if !ok {
		return
	}

	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	item := models.ChecklistItem{ChecklistID: cl.ID, Text: req.Text}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item created",
		"data":    item,
	})
}

type toggleItemReq struct {
	Checked *bool `json:"checked" binding:"required"`
}

func ToggleChecklistItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	var item models.ChecklistItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}

	if _, ok := middleware.TripForChecklist(c, int(item.ChecklistID)); !ok {
		return
	}

	var req toggleItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	item.Checked = *req.Checked
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated",
		"data":    item,
	})
}

func DeleteChecklistItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	var item models.ChecklistItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}

	if _, ok := middleware.TripForChecklist(c, int(item.ChecklistID)); !ok {
		return
	}

	if err := config.DB.Delete(&models.ChecklistItem{}, item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
