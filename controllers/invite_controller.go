package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

type invitePartnerReq struct {
	Email string `json:"email" binding:"required,email"`
}

// InvitePartner creates a pending membership with a fresh invite token. The
// token is shared out-of-band; no email is sent from here.
func InvitePartner(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	var req invitePartnerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	// no second pending invite for the same address
	var count int64
	config.DB.Model(&models.HouseholdMember{}).
		Where("household_id = ? AND invited_email = ? AND status = ?", h.ID, req.Email, models.MemberStatusPending).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "An invite for this email is already pending"})
		return
	}

	token, err := utils.GenerateInviteToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate invite token"})
		return
	}

	invite := models.HouseholdMember{
		HouseholdID:  h.ID,
		InvitedEmail: &req.Email,
		InviteToken:  token,
		Role:         models.RoleMember,
		Status:       models.MemberStatusPending,
	}

	if err := config.DB.Create(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create invite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Invite created",
		"data": gin.H{
			"id":            invite.ID,
			"invited_email": invite.InvitedEmail,
			"invite_token":  invite.InviteToken,
			"status":        invite.Status,
			"created_at":    invite.CreatedAt,
		},
	})
}

// ListPendingInvites returns pending invites addressed to the caller's email.
func ListPendingInvites(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var invites []models.HouseholdMember
	if err := config.DB.Preload("Household").
		Where("invited_email = ? AND status = ?", u.Email, models.MemberStatusPending).
		Order("created_at ASC").
		Find(&invites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list invites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invites})
}

type acceptInviteReq struct {
	Token string `json:"token" binding:"required"`
}

// AcceptInvite redeems an invite token. The whole transition is one
// conditional UPDATE matching token AND status=pending, so of two concurrent
// redemptions exactly one sees RowsAffected == 1.
func AcceptInvite(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req acceptInviteReq
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

	res := config.DB.Model(&models.HouseholdMember{}).
		Where("invite_token = ? AND status = ?", req.Token, models.MemberStatusPending).
		Updates(map[string]interface{}{
			"user_id": u.ID,
			"status":  models.MemberStatusActive,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not accept invite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid invite code"})
		return
	}

	var m models.HouseholdMember
	if err := config.DB.Preload("Household").
		Where("invite_token = ?", req.Token).
		First(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read membership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invite accepted",
		"data":    m,
	})
}

// CancelInvite deletes an invite only while it is still pending. An already
// accepted membership is never touched: the status predicate makes the delete
// a no-op then.
func CancelInvite(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	res := config.DB.
		Where("id = ? AND household_id = ? AND status = ?", id, h.ID, models.MemberStatusPending).
		Delete(&models.HouseholdMember{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not cancel invite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No pending invite with that ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invite cancelled"})
}
