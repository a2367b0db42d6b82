package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skotch-labs/shop-backoffice/internal/apperr"
	"github.com/skotch-labs/shop-backoffice/internal/es"
	"github.com/skotch-labs/shop-backoffice/internal/util"
)

type SearchHandler struct {
	Index es.ProductIndexer
}

func NewSearchHandler(index es.ProductIndexer) *SearchHandler {
	return &SearchHandler{Index: index}
}

// Search
//
//	@Summary	Full-text product search for the landing page
//	@Tags		search
//	@Produce	json
//	@Param		q		query		string	true	"Search query"
//	@Param		page	query		int		false	"Page number"
//	@Param		size	query		int		false	"Page size"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	handlers.errorBody
//	@Failure	500		{object}	handlers.errorBody
//	@Router		/api/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return errorResponse(c, apperr.Validation("Search query is required"))
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := h.Index.Search(c.Request().Context(), q, from, size)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
