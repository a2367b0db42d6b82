package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	db := initTestDB(t)
	h := &StatsHandler{DB: db}
	e := echo.New()

	category := createCategory(t, db, "lighting")
	createProduct(t, db, "lamp", category.ID)
	createProduct(t, db, "bulb", category.ID)
	createUser(t, db, "alice@example.com")

	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/admin/stats", nil)
	require.NoError(t, h.Stats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var counts map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	require.Equal(t, int64(2), counts["products"])
	require.Equal(t, int64(1), counts["categories"])
	require.Equal(t, int64(1), counts["users"])
	require.Equal(t, int64(0), counts["feedbacks"])
	require.Equal(t, int64(0), counts["brands"])
}
