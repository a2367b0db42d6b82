package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/skotch-labs/shop-backoffice/internal/apperr"
	"github.com/skotch-labs/shop-backoffice/internal/es"
	"github.com/skotch-labs/shop-backoffice/internal/models"
	"github.com/skotch-labs/shop-backoffice/internal/mykafka"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
	Index    es.ProductIndexer
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *uint    `json:"stock"`
	CategoryID  uint     `json:"categoryId"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *uint    `json:"stock"`
	CategoryID  *uint    `json:"categoryId"`
}

func (h *ProductHandler) index(c echo.Context, prod *models.Product) {
	if h.Index == nil {
		return
	}
	if err := h.Index.IndexProduct(c.Request().Context(), prod); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}

// GetProducts
//
//	@Summary	List all products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		models.Product
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/products [get]
func (h *ProductHandler) GetProducts(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Preload("Category").Preload("Feedbacks").Find(&products).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct
//
//	@Summary	Get a product by ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "Product")
	if err != nil {
		return errorResponse(c, err)
	}

	var product models.Product
	if err := h.DB.Preload("Category").Preload("Feedbacks").First(&product, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Product"))
		}
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct
//
//	@Summary	Create a new product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		createProductRequest	true	"Product fields"
//	@Success	201		{object}	models.Product
//	@Failure	400		{object}	handlers.errorBody
//	@Failure	404		{object}	handlers.errorBody
//	@Router		/api/products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Name == "" {
		return errorResponse(c, apperr.Validation("Name is required"))
	}
	if req.Price == nil {
		return errorResponse(c, apperr.Validation("Price is required"))
	}
	if *req.Price < 0 {
		return errorResponse(c, apperr.Validation("Price must be a non-negative number"))
	}
	if req.CategoryID == 0 {
		return errorResponse(c, apperr.Validation("Category ID is required"))
	}

	if err := h.DB.First(&models.Category{}, req.CategoryID).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Category"))
		}
		return errorResponse(c, err)
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicProductEvents, fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	h.index(c, &product)

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial merge: only fields present in the body are
// written, everything else is left untouched.
//
//	@Summary	Update a product by ID
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		product	body		updateProductRequest	true	"Fields to update"
//	@Success	200		{object}	models.Product
//	@Failure	400		{object}	handlers.errorBody
//	@Failure	404		{object}	handlers.errorBody
//	@Router		/api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "Product")
	if err != nil {
		return errorResponse(c, err)
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Product"))
		}
		return errorResponse(c, err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return errorResponse(c, apperr.Validation("Name is required"))
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return errorResponse(c, apperr.Validation("Price must be a non-negative number"))
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		if err := h.DB.First(&models.Category{}, *req.CategoryID).Error; err != nil {
			if isNotFound(err) {
				return errorResponse(c, apperr.NotFound("Category"))
			}
			return errorResponse(c, err)
		}
		updates["category_id"] = *req.CategoryID
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&product).Updates(updates).Error; err != nil {
			return errorResponse(c, err)
		}
	}

	if err := h.DB.Preload("Category").First(&product, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicProductEvents, fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})
	h.index(c, &product)

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct
//
//	@Summary	Delete a product by ID
//	@Tags		products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "Product")
	if err != nil {
		return errorResponse(c, err)
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Product"))
		}
		return errorResponse(c, err)
	}

	if err := h.DB.Delete(&models.Product{}, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicProductEvents, fmt.Sprint(id), map[string]interface{}{
		"type":      "product_deleted",
		"productID": id,
	})
	if h.Index != nil {
		if err := h.Index.DeleteProduct(c.Request().Context(), id); err != nil {
			c.Logger().Errorf("ES delete error: %v", err)
		}
	}

	return c.NoContent(http.StatusNoContent)
}
