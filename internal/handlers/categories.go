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

type CategoryHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
}

type categoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

// GetCategories
//
//	@Summary	List all categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		models.Category
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	var categories []models.Category
	if err := h.DB.Find(&categories).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory
//
//	@Summary	Get a category by ID
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	models.Category
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "Category")
	if err != nil {
		return errorResponse(c, err)
	}

	var category models.Category
	if err := h.DB.Preload("Products").First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Category"))
		}
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory
//
//	@Summary	Create a new category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		categoryRequest	true	"Category fields"
//	@Success	201			{object}	models.Category
//	@Failure	400			{object}	handlers.errorBody
//	@Router		/api/categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Name == "" {
		return errorResponse(c, apperr.Validation("Name are required"))
	}

	category := models.Category{Name: req.Name}
	if err := h.DB.Create(&category).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(category.ID), map[string]interface{}{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory
//
//	@Summary	Update a category by ID
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Category ID"
//	@Param		category	body		updateCategoryRequest	true	"Fields to update"
//	@Success	200			{object}	models.Category
//	@Failure	400			{object}	handlers.errorBody
//	@Failure	404			{object}	handlers.errorBody
//	@Router		/api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "Category")
	if err != nil {
		return errorResponse(c, err)
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Category"))
		}
		return errorResponse(c, err)
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Name != nil {
		if *req.Name == "" {
			return errorResponse(c, apperr.Validation("Name are required"))
		}
		if err := h.DB.Model(&category).Update("name", *req.Name).Error; err != nil {
			return errorResponse(c, err)
		}
		if err := h.DB.First(&category, id).Error; err != nil {
			return errorResponse(c, err)
		}
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(category.ID), map[string]interface{}{
		"type":       "category_updated",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory
//
//	@Summary	Delete a category by ID
//	@Tags		categories
//	@Param		id	path	int	true	"Category ID"
//	@Success	204
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "Category")
	if err != nil {
		return errorResponse(c, err)
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Category"))
		}
		return errorResponse(c, err)
	}

	if err := h.DB.Delete(&models.Category{}, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicCatalogEvents, fmt.Sprint(id), map[string]interface{}{
		"type":       "category_deleted",
		"categoryID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
