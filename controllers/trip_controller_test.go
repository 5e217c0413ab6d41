package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/models"
)

func TestCreateTrip(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	createHousehold(t, "Our Adventures", u)

	body := map[string]interface{}{
		"name":        "Summer in Lisbon",
		"destination": "Lisbon",
		"start_date":  "2024-06-01",
		"end_date":    "2024-06-03",
	}
	w := doJSON(t, r, http.MethodPost, "/api/trips", body, bearer(t, u))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var trips []models.Trip
	require.NoError(t, config.DB.Find(&trips).Error)
	require.Len(t, trips, 1)
	assert.Equal(t, "Lisbon", trips[0].Destination)
}

func TestCreateTripDateValidation(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	createHousehold(t, "Our Adventures", u)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "EndBeforeStart", start: "2024-06-03", end: "2024-06-01"},
		{name: "MalformedStart", start: "June 1st", end: "2024-06-03"},
		{name: "MalformedEnd", start: "2024-06-01", end: "03/06/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]interface{}{
				"name":        "Bad trip",
				"destination": "Nowhere",
				"start_date":  tt.start,
				"end_date":    tt.end,
			}
			w := doJSON(t, r, http.MethodPost, "/api/trips", body, bearer(t, u))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestTripDetail(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	for _, e := range []models.Expense{
		{TripID: trip.ID, Amount: 40, Currency: "EUR", Category: "food", Date: "2024-06-01"},
		{TripID: trip.ID, Amount: 120, Currency: "EUR", Category: "hotels", Date: "2024-06-02"},
	} {
		require.NoError(t, config.DB.Create(&e).Error)
	}

	cl := models.Checklist{TripID: trip.ID, Name: "Packing"}
	require.NoError(t, config.DB.Create(&cl).Error)
	for i, checked := range []bool{true, true, true, false} {
		item := models.ChecklistItem{ChecklistID: cl.ID, Text: fmt.Sprintf("item %d", i), Checked: checked}
		require.NoError(t, config.DB.Create(&item).Error)
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), nil, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["duration_days"])
	assert.Equal(t, float64(160), data["total_spent"])

	// expense groups come newest-first
	groups := data["expenses"].([]interface{})
	require.Len(t, groups, 2)
	first := groups[0].(map[string]interface{})
	assert.Equal(t, "2024-06-02", first["date"])

	checklists := data["checklists"].([]interface{})
	require.Len(t, checklists, 1)
	assert.Equal(t, float64(75), checklists[0].(map[string]interface{})["progress"])
}

func TestUpdateTripPartial(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/trips/%d", trip.ID),
		map[string]string{"name": "Lisbon & Porto"}, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Trip
	require.NoError(t, config.DB.First(&got, trip.ID).Error)
	assert.Equal(t, "Lisbon & Porto", got.Name)
	assert.Equal(t, "Lisbon", trip.Name) // untouched fields keep their values
	assert.Equal(t, "2024-06-01", got.StartDate)

	// shrinking the range below the stored start is rejected
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/trips/%d", trip.ID),
		map[string]string{"end_date": "2024-05-30"}, bearer(t, u))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteTripCascades(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	exp := models.Expense{TripID: trip.ID, Amount: 40, Currency: "EUR", Category: "food", Date: "2024-06-01"}
	require.NoError(t, config.DB.Create(&exp).Error)
	cl := models.Checklist{TripID: trip.ID, Name: "Packing"}
	require.NoError(t, config.DB.Create(&cl).Error)
	item := models.ChecklistItem{ChecklistID: cl.ID, Text: "passport"}
	require.NoError(t, config.DB.Create(&item).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/trips/%d", trip.ID), nil, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, m := range []interface{}{&models.Trip{}, &models.Expense{}, &models.Checklist{}, &models.ChecklistItem{}} {
		var count int64
		config.DB.Model(m).Count(&count)
		assert.EqualValues(t, 0, count)
	}
}

func TestTripScopedToHousehold(t *testing.T) {
	r := setupTest(t)
	anna := createUser(t, "Anna", "anna@example.com")
	ha := createHousehold(t, "Anna's", anna)
	trip := createTrip(t, ha, "Lisbon", "2024-06-01", "2024-06-03")

	mark := createUser(t, "Mark", "mark@example.com")
	createHousehold(t, "Mark's", mark)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/trips/%d", trip.ID), nil, bearer(t, mark))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/trips", nil, bearer(t, mark))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])
}

func TestListTripsSorted(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	createTrip(t, h, "Later", "2024-09-01", "2024-09-05")
	createTrip(t, h, "Sooner", "2024-03-01", "2024-03-05")

	w := doJSON(t, r, http.MethodGet, "/api/trips", nil, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Sooner", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Later", data[1].(map[string]interface{})["name"])
}
