package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/skotch-labs/shop-backoffice/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
}

// errorResponse maps the apperr taxonomy onto the wire contract:
// validation -> 400, missing row -> 404, anything else -> 500 with the
// underlying message surfaced (this is an internal admin tool).
func errorResponse(c echo.Context, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}

// parseID resolves the :id path segment. The entity name goes into the
// error messages the same way the admin UI expects them.
func parseID(c echo.Context, entity string) (uint, error) {
	idParam := c.Param("id")
	if idParam == "" {
		return 0, apperr.Validation("%s ID is required", entity)
	}
	id, err := strconv.Atoi(idParam)
	if err != nil || id < 0 {
		return 0, apperr.Validation("Invalid %s ID format", strings.ToLower(entity))
	}
	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
