package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/models"
)

// CheckTripAccess loads the trip from the :id param and verifies it belongs to
// the caller's household, then puts it into the context for the controller.
// Must run after RequireHousehold.
func CheckTripAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.MustGet(CtxHousehold).(models.Household)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
			return
		}

		var trip models.Trip
		if e := config.DB.First(&trip, id).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read trip"})
			return
		}

		if trip.HouseholdID != h.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Trip belongs to another household"})
			return
		}

		c.Set(CtxTrip, trip)
		c.Next()
	}
}

// TripForExpense resolves the owning trip of an expense and checks household
// scope the same way. Returns the expense too, so controllers don't repeat the
// lookup.
func TripForExpense(c *gin.Context, expenseID int) (*models.Expense, bool) {
	h := c.MustGet(CtxHousehold).(models.Household)

	var exp models.Expense
	if err := config.DB.First(&exp, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
			return nil, false
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read expense"})
		return nil, false
	}

	var trip models.Trip
	if err := config.DB.First(&trip, exp.TripID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read trip"})
		return nil, false
	}
	if trip.HouseholdID != h.ID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Expense belongs to another household"})
		return nil, false
	}
	return &exp, true
}

// TripForChecklist does the same scope walk for a checklist.
func TripForChecklist(c *gin.Context, checklistID int) (*models.Checklist, bool) {
	h := c.MustGet(CtxHousehold).(models.Household)

	var cl models.Checklist
	if err := config.DB.First(&cl, checklistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Checklist not found"})
			return nil, false
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read checklist"})
		return nil, false
	}

	var trip models.Trip
	if err := config.DB.First(&trip, cl.TripID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Could not read trip"})
		return nil, false
	}
	if trip.HouseholdID != h.ID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Checklist belongs to another household"})
		return nil, false
	}
	return &cl, true
}
