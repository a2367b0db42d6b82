package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/skotch-labs/shop-backoffice/internal/models"
)

func newCategoryHandler(t *testing.T) (*CategoryHandler, *echo.Echo) {
	t.Helper()
	return &CategoryHandler{DB: initTestDB(t), Producer: &fakePublisher{}}, echo.New()
}

func TestCreateCategoryRequiresName(t *testing.T) {
	h, e := newCategoryHandler(t)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/categories", map[string]string{})
	require.NoError(t, h.CreateCategory(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Name are required", decodeError(t, rec))

	var count int64
	require.NoError(t, h.DB.Model(&models.Category{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateCategoryRejectsEmptyName(t *testing.T) {
	h, e := newCategoryHandler(t)
	require.NoError(t, h.DB.Create(&models.Category{Name: "lighting"}).Error)

	empty := ""
	rec, c := doJSONRequest(t, e, http.MethodPut, "/api/categories/1", map[string]*string{"name": &empty})
	withID(c, "1")
	require.NoError(t, h.UpdateCategory(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Name are required", decodeError(t, rec))
}

func TestCategoryCRUD(t *testing.T) {
	h, e := newCategoryHandler(t)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/categories", map[string]string{"name": "lighting"})
	require.NoError(t, h.CreateCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "lighting", created.Name)

	rec, c = doJSONRequest(t, e, http.MethodGet, "/api/categories", nil)
	require.NoError(t, h.GetCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)

	rec, c = doJSONRequest(t, e, http.MethodPut, "/api/categories/1", map[string]string{"name": "lamps"})
	withID(c, "1")
	require.NoError(t, h.UpdateCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Category
	require.NoError(t, h.DB.First(&updated, created.ID).Error)
	require.Equal(t, "lamps", updated.Name)

	rec, c = doJSONRequest(t, e, http.MethodDelete, "/api/categories/1", nil)
	withID(c, "1")
	require.NoError(t, h.DeleteCategory(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, c = doJSONRequest(t, e, http.MethodDelete, "/api/categories/1", nil)
	withID(c, "1")
	require.NoError(t, h.DeleteCategory(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Category not found", decodeError(t, rec))
}

func TestUpdateCategoryInvalidID(t *testing.T) {
	h, e := newCategoryHandler(t)

	rec, c := doJSONRequest(t, e, http.MethodPut, "/api/categories/abc", map[string]string{"name": "x"})
	withID(c, "abc")
	require.NoError(t, h.UpdateCategory(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid category ID format", decodeError(t, rec))
}
