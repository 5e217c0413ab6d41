package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/middleware"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/utils"
)

// GetCalendar returns the Monday-first month grid with the trips occupying
// each day. A trip occupies a day when start <= day <= end, both inclusive.
func GetCalendar(c *gin.Context) {
	h := c.MustGet(middleware.CtxHousehold).(models.Household)

	monthStr := c.DefaultQuery("month", time.Now().UTC().Format("2006-01"))
	ref, err := time.Parse("2006-01", monthStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "month must be YYYY-MM"})
		return
	}

	var trips []models.Trip
	if err := config.DB.
		Where("household_id = ?", h.ID).
		Order("start_date ASC").
		Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list trips"})
		return
	}

	type tripRange struct {
		trip       models.Trip
		start, end time.Time
	}
	ranges := make([]tripRange, 0, len(trips))
	for _, t := range trips {
		start, err1 := utils.ParseDate(t.StartDate)
		end, err2 := utils.ParseDate(t.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		ranges = append(ranges, tripRange{trip: t, start: start, end: end})
	}

	days := utils.MonthGrid(ref)
	out := make([]gin.H, 0, len(days))
	for _, day := range days {
		dayTrips := []gin.H{}
		for _, r := range ranges {
			if !utils.DayWithin(day, r.start, r.end) {
				continue
			}
			dayTrips = append(dayTrips, gin.H{
				"id":          r.trip.ID,
				"name":        r.trip.Name,
				"destination": r.trip.Destination,
				"is_start":    day.Equal(r.start),
				"is_end":      day.Equal(r.end),
			})
		}
		out = append(out, gin.H{
			"date":     day.Format(utils.DateLayout),
			"in_month": day.Month() == ref.Month(),
			"trips":    dayTrips,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"month": monthStr,
		"days":  out,
	})
}
