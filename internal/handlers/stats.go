package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/skotch-labs/shop-backoffice/internal/models"
)

type StatsHandler struct {
	DB *gorm.DB
}

// Stats feeds the dashboard header cards: one count per entity.
//
//	@Summary	Entity counts for the admin dashboard
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]int64
//	@Failure	401	{object}	handlers.errorBody
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/admin/stats [get]
func (h *StatsHandler) Stats(c echo.Context) error {
	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"users":      &models.User{},
		"categories": &models.Category{},
		"brands":     &models.Brand{},
		"products":   &models.Product{},
		"feedbacks":  &models.Feedback{},
	} {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			return errorResponse(c, err)
		}
		counts[name] = n
	}
	return c.JSON(http.StatusOK, counts)
}
