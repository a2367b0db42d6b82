package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/skotch-labs/shop-backoffice/internal/models"
)

func TestSearchRequiresQuery(t *testing.T) {
	h := NewSearchHandler(&fakeIndexer{})
	e := echo.New()

	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/search", nil)
	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Search query is required", decodeError(t, rec))
}

func TestSearchReturnsHits(t *testing.T) {
	index := &fakeIndexer{hits: []models.Product{
		{ID: 1, Name: "lamp"},
		{ID: 2, Name: "lampshade"},
	}}
	h := NewSearchHandler(index)
	e := echo.New()

	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/search?q=lamp", nil)
	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Products, 2)
}
