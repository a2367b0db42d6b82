package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/skotch-labs/shop-backoffice/internal/logging"
	"github.com/skotch-labs/shop-backoffice/internal/models"
)

type failingPublisher struct{}

func (failingPublisher) PublishEvent(context.Context, string, string, interface{}) error {
	return errors.New("broker unavailable")
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	h := &BrandHandler{DB: initTestDB(t), Producer: failingPublisher{}}
	e := echo.New()

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/brands", map[string]string{"name": "acme"})
	c.SetRequest(c.Request().WithContext(logging.IntoContext(c.Request().Context(), logging.New("error"))))
	require.NoError(t, h.CreateBrand(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	require.NoError(t, h.DB.Model(&models.Brand{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
