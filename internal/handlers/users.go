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

type UserHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
}

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type updateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// GetUsers
//
//	@Summary	List all users with their feedbacks
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		models.User
//	@Failure	500	{object}	handlers.errorBody
//	@Router		/api/users [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	var users []models.User
	if err := h.DB.Preload("Feedbacks").Find(&users).Error; err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser
//
//	@Summary	Get a user by ID
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	models.User
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "User")
	if err != nil {
		return errorResponse(c, err)
	}

	var user models.User
	if err := h.DB.Preload("Feedbacks").First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("User"))
		}
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser
//
//	@Summary	Create a new user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		createUserRequest	true	"User fields"
//	@Success	201		{object}	models.User
//	@Failure	400		{object}	handlers.errorBody
//	@Router		/api/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	if req.Email == "" {
		return errorResponse(c, apperr.Validation("Email is required"))
	}

	user := models.User{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return errorResponse(c, apperr.Validation("Email already exists"))
		}
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicUserEvents, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_created",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusCreated, user)
}

// UpdateUser
//
//	@Summary	Update a user by ID
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"User ID"
//	@Param		user	body		updateUserRequest	true	"Fields to update"
//	@Success	200		{object}	models.User
//	@Failure	400		{object}	handlers.errorBody
//	@Failure	404		{object}	handlers.errorBody
//	@Router		/api/users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "User")
	if err != nil {
		return errorResponse(c, err)
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("User"))
		}
		return errorResponse(c, err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, apperr.Validation("Invalid request body"))
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		if *req.Email == "" {
			return errorResponse(c, apperr.Validation("Email is required"))
		}
		updates["email"] = *req.Email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&user).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return errorResponse(c, apperr.Validation("Email already exists"))
			}
			return errorResponse(c, err)
		}
	}

	if err := h.DB.First(&user, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicUserEvents, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_updated",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, user)
}

// DeleteUser
//
//	@Summary	Delete a user by ID
//	@Tags		users
//	@Param		id	path	int	true	"User ID"
//	@Success	204
//	@Failure	400	{object}	handlers.errorBody
//	@Failure	404	{object}	handlers.errorBody
//	@Router		/api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "User")
	if err != nil {
		return errorResponse(c, err)
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return errorResponse(c, apperr.NotFound("User"))
		}
		return errorResponse(c, err)
	}

	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		return errorResponse(c, err)
	}

	publish(c, h.Producer, topicUserEvents, fmt.Sprint(id), map[string]interface{}{
		"type":   "user_deleted",
		"userID": id,
	})

	return c.NoContent(http.StatusNoContent)
}
