package token

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skotch-labs/shop-backoffice/internal/config"
	"github.com/skotch-labs/shop-backoffice/internal/models"
)

func newTestService(t *testing.T) *TokenService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return &TokenService{
		DB:            db,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func TestRotateToken(t *testing.T) {
	svc := newTestService(t)

	refresh, err := SignRefreshToken(1, "admin", svc.RefreshSecret)
	require.NoError(t, err)
	require.NoError(t, SaveRefreshToken(svc.DB, refresh, 1, "admin"))

	newAccess, newRefresh, err := svc.RotateToken(refresh)
	require.NoError(t, err)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
	require.NotEqual(t, refresh, newRefresh)

	// the old token is single-use
	_, _, err = svc.RotateToken(refresh)
	require.Error(t, err)

	var stored models.RefreshToken
	require.NoError(t, svc.DB.Where("token = ?", refresh).First(&stored).Error)
	require.True(t, stored.Revoked)
}

func TestValidateRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)

	access, err := SignAccessToken(1, "admin", svc.RefreshSecret)
	require.NoError(t, err)

	_, err = svc.ValidateRefresh(access)
	require.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestService(t)
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newContext := func(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("valid admin access token", func(t *testing.T) {
		access, err := SignAccessToken(1, "admin", svc.JWTSecret)
		require.NoError(t, err)

		c, rec := newContext(&http.Cookie{Name: "accessToken", Value: access})
		require.NoError(t, svc.RequireAdmin(next)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, uint(1), c.Get("adminID"))
	})

	t.Run("non-admin role", func(t *testing.T) {
		access, err := SignAccessToken(2, "user", svc.JWTSecret)
		require.NoError(t, err)

		c, _ := newContext(&http.Cookie{Name: "accessToken", Value: access})
		err = svc.RequireAdmin(next)(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("no cookies", func(t *testing.T) {
		c, _ := newContext()
		err := svc.RequireAdmin(next)(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("expired access token rotates via refresh", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  float64(1),
			"role": "admin",
			"exp":  time.Now().Add(-time.Minute).Unix(),
		})
		expiredStr, err := expired.SignedString(svc.JWTSecret)
		require.NoError(t, err)

		refresh, err := SignRefreshToken(1, "admin", svc.RefreshSecret)
		require.NoError(t, err)
		require.NoError(t, SaveRefreshToken(svc.DB, refresh, 1, "admin"))

		c, rec := newContext(
			&http.Cookie{Name: "accessToken", Value: expiredStr},
			&http.Cookie{Name: "refreshToken", Value: refresh},
		)
		require.NoError(t, svc.RequireAdmin(next)(c))
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies, "rotated cookie pair must be set")
	})
}
