package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/skotch-labs/shop-backoffice/internal/apperr"
	"github.com/skotch-labs/shop-backoffice/internal/models"
	"github.com/skotch-labs/shop-backoffice/internal/mykafka"
)

type BrandHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
}

type brandRequest struct {
	Name string `json:"name"`
}

type updateBrandRequest struct {
	Name *string `json:"name"`
}

// GetBrands
//
//	@Summary	List all brands
//	@Tags		brands
//	@Produce	json
//	@Success	200	{array}		models.Brand
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/brands [get]
func (h *BrandHandler) GetBrands(c echo.Context) error {
	var brands []models.Brand
	if err := h.DB.Find(&brands).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, brands)
}

// GetBrand
//
//	@Summary	Get a brand by ID
//	@Tags		brands
//	@Produce	json
//	@Param		id	path		int	true	"Brand ID"
//	@Success	200	{object}	models.Brand
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/brands/{id} [get]
func (h *BrandHandler) GetBrand(c echo.Context) error {
	id, err := parseID(c, "Brand")
	if err != nil {
		return errorResponse(c, err)
	}

	var brand models.Brand
	if err := h.DB.First(&brand, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Brand"))
		}
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, brand)
}

// CreateBrand
//
//	@Summary	Create a new brand
//	@Tags		brands
//	@Accept		json
//	@Produce	json
//	@Param		brand	body		brandRequest	true	"Brand fields"
//	@Success	201		{object}	models.Brand
//	@Failure	400		{object}	handlers.errorBody
//	@Router		/api/brands [post]
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Name == "" {
		return errorResponse(c, apperr.Validation("Name are required"))
	}

	brand := models.Brand{Name: req.Name}
	if err := h.DB.Create(&brand).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(brand.ID), map[string]interface{}{
		"type":    "brand_created",
		"brandID": brand.ID,
		"name":    brand.Name,
	})

	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand
//
//	@Summary	Update a brand by ID
//	@Tags		brands
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Brand ID"
//	@Param		brand	body		updateBrandRequest	true	"Fields to update"
//	@Success	200		{object}	models.Brand
//	@Failure	400		{object}	handlers.errorBody
//	@Failure	404		{object}	handlers.errorBody
//	@Router		/api/brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	id, err := parseID(c, "Brand")
	if err != nil {
		return errorResponse(c, err)
	}

	var brand models.Brand
	if err := h.DB.First(&brand, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Brand"))
		}
		return errorResponse(c, err)
	}

	var req updateBrandRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Name != nil {
		if *req.Name == "" {
			return errorResponse(c, apperr.Validation("Name are required"))
		}
		if err := h.DB.Model(&brand).Update("name", *req.Name).Error; err != nil {
			return errorResponse(c, err)
		}
		if err := h.DB.First(&brand, id).Error; err != nil {
			return errorResponse(c, err)
		}
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(brand.ID), map[string]interface{}{
		"type":    "brand_updated",
		"brandID": brand.ID,
		"name":    brand.Name,
	})

	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand
//
//	@Summary	Delete a brand by ID
//	@Tags		brands
//	@Param		id	path	int	true	"Brand ID"
//	@Success	204
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id, err := parseID(c, "Brand")
	if err != nil {
		return errorResponse(c, err)
	}

	var brand models.Brand
	if err := h.DB.First(&brand, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Brand"))
		}
		return errorResponse(c, err)
	}

	if err := h.DB.Delete(&models.Brand{}, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(id), map[string]interface{}{
		"type":    "brand_deleted",
		"brandID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
