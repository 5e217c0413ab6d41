package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/models"
)

// RequireHousehold loads the caller's active membership and household into the
// context. Every household-scoped operation goes through this check instead of
// assuming an ambient row-level policy.
func RequireHousehold() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		var m models.HouseholdMember
		err := config.DB.
			Where("user_id = ? AND status = ?", u.ID, models.MemberStatusActive).
			First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "No household"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read membership"})
			return
		}

		var h models.Household
		if err := config.DB.First(&h, m.HouseholdID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read household"})
			return
		}

		c.Set(CtxMembership, m)
		c.Set(CtxHousehold, h)
		c.Next()
	}
}

// RequireHouseholdOwner allows only the owner of the caller's household through.
// Must run after RequireHousehold.
func RequireHouseholdOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		m := c.MustGet(CtxMembership).(models.HouseholdMember)
		if m.Role != models.RoleOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Owner only"})
			return
		}
		c.Next()
	}
}
