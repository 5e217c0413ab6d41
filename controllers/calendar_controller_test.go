package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/models"
)

func TestCalendarMonth(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	w := doJSON(t, r, http.MethodGet, "/api/calendar?month=2024-06", nil, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "2024-06", body["month"])

	days := body["days"].([]interface{})
	require.NotEmpty(t, days)
	assert.Equal(t, 0, len(days)%7)

	occupied := map[string]int{}
	for _, d := range days {
		day := d.(map[string]interface{})
		trips := day["trips"].([]interface{})
		if len(trips) > 0 {
			occupied[day["date"].(string)] = len(trips)
		}
	}

	// the trip covers exactly June 1, 2 and 3
	assert.Len(t, occupied, 3)
	assert.Equal(t, 1, occupied["2024-06-01"])
	assert.Equal(t, 1, occupied["2024-06-02"])
	assert.Equal(t, 1, occupied["2024-06-03"])
}

func TestCalendarRejectsBadMonth(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	createHousehold(t, "Our Adventures", u)

	w := doJSON(t, r, http.MethodGet, "/api/calendar?month=June", nil, bearer(t, u))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestYearlyStats(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)

	lisbon := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")
	oslo := createTrip(t, h, "Oslo", "2024-09-10", "2024-09-12")
	createTrip(t, h, "OldYear", "2023-05-01", "2023-05-02")

	for _, e := range []models.Expense{
		{TripID: lisbon.ID, Amount: 100, Currency: "EUR", Category: "hotels", Date: "2024-06-01"},
		{TripID: lisbon.ID, Amount: 30, Currency: "EUR", Category: "food", Date: "2024-06-02"},
		{TripID: oslo.ID, Amount: 70, Currency: "EUR", Category: "food", Date: "2024-09-10"},
	} {
		require.NoError(t, config.DB.Create(&e).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats/yearly?year=2024", nil, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total_trips"])
	assert.Equal(t, float64(200), body["total_spent"])

	byCategory := body["by_category"].(map[string]interface{})
	assert.Equal(t, float64(100), byCategory["food"])
	assert.Equal(t, float64(100), byCategory["hotels"])
}
