package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vnkhanh/vacation-server/config"
	"github.com/vnkhanh/vacation-server/models"
	"github.com/vnkhanh/vacation-server/routes"
	"github.com/vnkhanh/vacation-server/utils"
)

var dbSeq atomic.Int64

// setupTest wires a fresh in-memory database into config.DB and returns a
// router with the full route table.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, name, email string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: email}
	require.NoError(t, config.DB.Create(&u).Error)
	return u
}

// createHousehold seeds a household with an active owner membership directly,
// bypassing the handler, for tests that are not about bootstrap itself.
func createHousehold(t *testing.T, name string, owner models.User) models.Household {
	t.Helper()
	h := models.Household{Name: name}
	require.NoError(t, config.DB.Create(&h).Error)
	token, err := utils.GenerateInviteToken()
	require.NoError(t, err)
	m := models.HouseholdMember{
		HouseholdID: h.ID,
		UserID:      &owner.ID,
		Role:        models.RoleOwner,
		InviteToken: token,
		Status:      models.MemberStatusActive,
	}
	require.NoError(t, config.DB.Create(&m).Error)
	return h
}

func createTrip(t *testing.T, h models.Household, name, start, end string) models.Trip {
	t.Helper()
	trip := models.Trip{
		HouseholdID: h.ID,
		Name:        name,
		Destination: "Somewhere",
		StartDate:   start,
		EndDate:     end,
	}
	require.NoError(t, config.DB.Create(&trip).Error)
	return trip
}

func bearer(t *testing.T, u models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(fmt.Sprintf("%d", u.ID))
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
