package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newControllerTestDB wires config.DB to an isolated in-memory database so
// handlers run against it, like main does with Postgres.
func newControllerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })
	return db
}

func TestListFoodsActiveOnlyParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newControllerTestDB(t)

	role := models.Role{Name: models.RoleDealer}
	require.NoError(t, db.Create(&role).Error)
	dealer := models.User{Email: "dealer@example.com", Password: "x", RoleID: role.ID}
	require.NoError(t, db.Create(&dealer).Error)

	foods := []models.Food{
		{Name: "Soup", Price: 18, Category: "Soup", DealerID: dealer.ID, IsActive: true},
		{Name: "Retired", Price: 25, Category: "Soup", DealerID: dealer.ID, IsActive: false},
	}
	require.NoError(t, db.Create(&foods).Error)

	r := gin.New()
	r.GET("/foods", ListFoods)

	listNames := func(t *testing.T, query string) (int, []string) {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/foods"+query, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			return w.Code, nil
		}
		var got []models.Food
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		names := make([]string, 0, len(got))
		for _, f := range got {
			names = append(names, f.Name)
		}
		return w.Code, names
	}

	code, names := listNames(t, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Soup"}, names)

	// ParseBool accepts the usual spellings, not just "true".
	for _, v := range []string{"1", "t", "True", "TRUE"} {
		code, names = listNames(t, "?active_only="+v)
		assert.Equal(t, http.StatusOK, code, v)
		assert.Equal(t, []string{"Soup"}, names, v)
	}

	code, names = listNames(t, "?active_only=false")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Soup", "Retired"}, names)

	code, _ = listNames(t, "?active_only=banana")
	assert.Equal(t, http.StatusBadRequest, code)
}
