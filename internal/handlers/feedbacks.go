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

type FeedbackHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
}

type createFeedbackRequest struct {
	Content   string `json:"content"`
	Rating    *int   `json:"rating"`
	AuthorID  uint   `json:"authorId"`
	ProductID uint   `json:"productId"`
}

type updateFeedbackRequest struct {
	Content   *string `json:"content"`
	Rating    *int    `json:"rating"`
	AuthorID  *uint   `json:"authorId"`
	ProductID *uint   `json:"productId"`
}

func validateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return apperr.Validation("Rating must be between 0 and 5")
	}
	return nil
}

// checkAuthor and checkProduct verify the referenced rows exist before a
// feedback write; checks run only for foreign keys present in the payload.
func (h *FeedbackHandler) checkAuthor(id uint) error {
	if err := h.DB.First(&models.User{}, id).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound("User")
		}
		return err
	}
	return nil
}

func (h *FeedbackHandler) checkProduct(id uint) error {
	if err := h.DB.First(&models.Product{}, id).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound("Product")
		}
		return err
	}
	return nil
}

// GetFeedbacks
//
//	@Summary	List all feedbacks with author and product
//	@Tags		feedbacks
//	@Produce	json
//	@Success	200	{array}		models.Feedback
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/feedbacks [get]
func (h *FeedbackHandler) GetFeedbacks(c echo.Context) error {
	var feedbacks []models.Feedback
	if err := h.DB.Preload("Author").Preload("Product").Find(&feedbacks).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, feedbacks)
}

// GetFeedback
//
//	@Summary	Get a feedback by ID
//	@Tags		feedbacks
//	@Produce	json
//	@Param		id	path		int	true	"Feedback ID"
//	@Success	200	{object}	models.Feedback
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/feedbacks/{id} [get]
func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	id, err := parseID(c, "Feedback")
	if err != nil {
		return errorResponse(c, err)
	}

	var feedback models.Feedback
	if err := h.DB.Preload("Author").Preload("Product").First(&feedback, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Feedback"))
		}
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, feedback)
}

// CreateFeedback
//
//	@Summary	Create a new feedback
//	@Tags		feedbacks
//	@Accept		json
//	@Produce	json
//	@Param		feedback	body		createFeedbackRequest	true	"Feedback fields"
//	@Success	201			{object}	models.Feedback
//	@Failure	400			{object}	handlers.errorBody
//	@Failure	404			{object}	handlers.errorBody
//	@Router		/api/feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	feedback := models.Feedback{
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		ProductID: req.ProductID,
	}

	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return errorResponse(c, err)
		}
		feedback.Rating = *req.Rating
	}
	if req.AuthorID != 0 {
		if err := h.checkAuthor(req.AuthorID); err != nil {
			return errorResponse(c, err)
		}
	}
	if req.ProductID != 0 {
		if err := h.checkProduct(req.ProductID); err != nil {
			return errorResponse(c, err)
		}
	}

	if err := h.DB.Create(&feedback).Error; err != nil {
		return errorResponse(c, err)
	}

	// The admin UI shows the created row with its relations attached.
	if err := h.DB.Preload("Author").Preload("Product").First(&feedback, feedback.ID).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicFeedbackEvents, fmt.Sprint(feedback.ID), map[string]interface{}{
		"type":       "feedback_created",
		"feedbackID": feedback.ID,
		"productID":  feedback.ProductID,
		"rating":     feedback.Rating,
	})

	return c.JSON(http.StatusCreated, feedback)
}

// UpdateFeedback
//
//	@Summary	Update a feedback by ID
//	@Tags		feedbacks
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Feedback ID"
//	@Param		feedback	body		updateFeedbackRequest	true	"Fields to update"
//	@Success	200			{object}	models.Feedback
//	@Failure	400			{object}	handlers.errorBody
//	@Failure	404			{object}	handlers.errorBody
//	@Router		/api/feedbacks/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	id, err := parseID(c, "Feedback")
	if err != nil {
		return errorResponse(c, err)
	}

	var feedback models.Feedback
	if err := h.DB.First(&feedback, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Feedback"))
		}
		return errorResponse(c, err)
	}

	var req updateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return errorResponse(c, err)
		}
		updates["rating"] = *req.Rating
	}
	if req.AuthorID != nil {
		if err := h.checkAuthor(*req.AuthorID); err != nil {
			return errorResponse(c, err)
		}
		updates["author_id"] = *req.AuthorID
	}
	if req.ProductID != nil {
		if err := h.checkProduct(*req.ProductID); err != nil {
			return errorResponse(c, err)
		}
		updates["product_id"] = *req.ProductID
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&feedback).Updates(updates).Error; err != nil {
			return errorResponse(c, err)
		}
	}

	if err := h.DB.Preload("Author").Preload("Product").First(&feedback, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicFeedbackEvents, fmt.Sprint(feedback.ID), map[string]interface{}{
		"type":       "feedback_updated",
		"feedbackID": feedback.ID,
		"productID":  feedback.ProductID,
		"rating":     feedback.Rating,
	})

	return c.JSON(http.StatusOK, feedback)
}

// DeleteFeedback
//
//	@Summary	Delete a feedback by ID
//	@Tags		feedbacks
//	@Param		id	path	int	true	"Feedback ID"
//	@Success	204
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/feedbacks/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	id, err := parseID(c, "Feedback")
	if err != nil {
		return errorResponse(c, err)
	}

	var feedback models.Feedback
	if err := h.DB.First(&feedback, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("Feedback"))
		}
		return errorResponse(c, err)
	}

	if err := h.DB.Delete(&models.Feedback{}, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicFeedbackEvents, fmt.Sprint(id), map[string]interface{}{
		"type":       "feedback_deleted",
		"feedbackID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
