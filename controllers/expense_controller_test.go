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

func TestCreateExpense(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	body := map[string]interface{}{
		"amount":   42.5,
		"currency": "EUR",
		"category": "food",
		"date":     "2024-06-02",
	}
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/trips/%d/expenses", trip.ID), body, bearer(t, u))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var exp models.Expense
	require.NoError(t, config.DB.First(&exp).Error)
	assert.Equal(t, 42.5, exp.Amount)
	assert.Equal(t, trip.ID, exp.TripID)
}

func TestCreateExpenseValidation(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "NegativeAmount", body: map[string]interface{}{
			"amount": -1.0, "currency": "EUR", "category": "food", "date": "2024-06-02"}},
		{name: "UnknownCategory", body: map[string]interface{}{
			"amount": 10.0, "currency": "EUR", "category": "souvenirs", "date": "2024-06-02"}},
		{name: "UnknownCurrency", body: map[string]interface{}{
			"amount": 10.0, "currency": "XXX", "category": "food", "date": "2024-06-02"}},
		{name: "MalformedDate", body: map[string]interface{}{
			"amount": 10.0, "currency": "EUR", "category": "food", "date": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/trips/%d/expenses", trip.ID), tt.body, bearer(t, u))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	var count int64
	config.DB.Model(&models.Expense{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestUpdateExpensePartial(t *testing.T) {
	r := setupTest(t)
	u := createUser(t, "Anna", "anna@example.com")
	h := createHousehold(t, "Our Adventures", u)
	trip := createTrip(t, h, "Lisbon", "2024-06-01", "2024-06-03")

	desc := "dinner"
	exp := models.Expense{TripID: trip.ID, Amount: 40, Currency: "EUR", Category: "food", Description: &desc, Date: "2024-06-01"}
	require.NoError(t, config.DB.Create(&exp).Error)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/expenses/%d", exp.ID),
		map[string]interface{}{"amount": 55.0}, bearer(t, u))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Expense
	require.NoError(t, config.DB.First(&got, exp.ID).Error)
	assert.Equal(t, 55.0, got.Amount)
	require.NotNil(t, got.Description)
	assert.Equal(t, "dinner", *got.Description) // unsupplied fields stay put
}

func TestDeleteExpenseScope(t *testing.T) {
	r := setupTest(t)
	anna := createUser(t, "Anna", "anna@example.com")
	ha := createHousehold(t, "Anna's", anna)
	trip := createTrip(t, ha, "Lisbon", "2024-06-01", "2024-06-03")
	exp := models.Expense{TripID: trip.ID, Amount: 40, Currency: "EUR", Category: "food", Date: "2024-06-01"}
	require.NoError(t, config.DB.Create(&exp).Error)

	mark := createUser(t, "Mark", "mark@example.com")
	createHousehold(t, "Mark's", mark)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", exp.ID), nil, bearer(t, mark))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", exp.ID), nil, bearer(t, anna))
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.Expense{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
