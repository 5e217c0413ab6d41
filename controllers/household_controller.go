package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

type createHouseholdReq struct {
	Name string `json:"name" binding:"required,min=1"`
}

// CreateHousehold bootstraps a household: the household row and the caller's
// owner membership are written in one transaction, so a failed second insert
// can't leave an orphaned household behind.
func CreateHousehold(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createHouseholdReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	// one active membership per user
	var count int64
	config.DB.Model(&models.HouseholdMember{}).
		Where("user_id = ? AND status = ?", u.ID, models.MemberStatusActive).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "You already belong to a household"})
		return
	}

	// every membership row carries a token so the unique index never sees
	// duplicate empties; only pending rows are redeemable
	token, err := utils.GenerateInviteToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create household"})
		return
	}

	var h models.Household
	var m models.HouseholdMember
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		h = models.Household{Name: req.Name}
		if err := tx.Create(&h).Error; err != nil {
			return err
		}
		m = models.HouseholdMember{
			HouseholdID: h.ID,
			UserID:      &u.ID,
			Role:        models.RoleOwner,
			InviteToken: token,
			Status:      models.MemberStatusActive,
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create household"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Household created",
		"data": gin.H{
			"household":  h,
			"membership": m,
		},
	})
}

// GetMyHousehold returns the caller's household, joined through the single
// active membership, or 404 when they have none.
func GetMyHousehold(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var m models.HouseholdMember
	err := config.DB.Preload("Household").
		Where("user_id = ? AND status = ?", u.ID, models.MemberStatusActive).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No household"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read membership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"household":  m.Household,
			"membership": m,
		},
	})
}

// GetHouseholdMembers lists all memberships of the caller's household, oldest
// first, pending invites included.
func GetHouseholdMembers(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	var members []models.HouseholdMember
	if err := config.DB.
		Where("household_id = ?", h.ID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": members})
}
