package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/skotch-labs/shop-backoffice/internal/models"
)

func newFeedbackHandler(t *testing.T) (*FeedbackHandler, *fakePublisher, *echo.Echo) {
	t.Helper()

	producer := &fakePublisher{}
	return &FeedbackHandler{DB: initTestDB(t), Producer: producer}, producer, echo.New()
}

func seedAuthorAndProduct(t *testing.T, h *FeedbackHandler) (models.User, models.Product) {
	t.Helper()

	user := createUser(t, h.DB, "alice@example.com")
	category := createCategory(t, h.DB, "lighting")
	product := createProduct(t, h.DB, "lamp", category.ID)
	return user, product
}

func TestCreateFeedbackRatingBounds(t *testing.T) {
	h, _, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/feedbacks", map[string]interface{}{
		"content":   "bad",
		"rating":    6,
		"authorId":  user.ID,
		"productId": product.ID,
	})
	require.NoError(t, h.CreateFeedback(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Rating must be between 0 and 5", decodeError(t, rec))

	for _, rating := range []int{0, 5} {
		rec, c := doJSONRequest(t, e, http.MethodPost, "/api/feedbacks", map[string]interface{}{
			"content":   "ok",
			"rating":    rating,
			"authorId":  user.ID,
			"productId": product.ID,
		})
		require.NoError(t, h.CreateFeedback(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Feedback
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.Equal(t, rating, created.Rating)
	}
}

func TestCreateFeedbackDanglingReferences(t *testing.T) {
	h, producer, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/feedbacks", map[string]interface{}{
		"rating":    4,
		"authorId":  99,
		"productId": product.ID,
	})
	require.NoError(t, h.CreateFeedback(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decodeError(t, rec))

	rec, c = doJSONRequest(t, e, http.MethodPost, "/api/feedbacks", map[string]interface{}{
		"rating":    4,
		"authorId":  user.ID,
		"productId": 99,
	})
	require.NoError(t, h.CreateFeedback(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decodeError(t, rec))

	require.Empty(t, producer.events)

	var count int64
	require.NoError(t, h.DB.Model(&models.Feedback{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateFeedbackAttachesRelations(t *testing.T) {
	h, producer, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	rec, c := doJSONRequest(t, e, http.MethodPost, "/api/feedbacks", map[string]interface{}{
		"content":   "great lamp",
		"rating":    5,
		"authorId":  user.ID,
		"productId": product.ID,
	})
	require.NoError(t, h.CreateFeedback(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Author)
	require.Equal(t, user.Email, created.Author.Email)
	require.NotNil(t, created.Product)
	require.Equal(t, product.Name, created.Product.Name)

	require.Len(t, producer.events, 1)
	require.Equal(t, "feedback_created", producer.events[0].Event["type"])
}

func TestGetFeedbacksPreloadsRelations(t *testing.T) {
	h, _, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	feedback := models.Feedback{Content: "nice", Rating: 4, AuthorID: user.ID, ProductID: product.ID}
	require.NoError(t, h.DB.Create(&feedback).Error)

	rec, c := doJSONRequest(t, e, http.MethodGet, "/api/feedbacks", nil)
	require.NoError(t, h.GetFeedbacks(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var feedbacks []models.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feedbacks))
	require.Len(t, feedbacks, 1)
	require.NotNil(t, feedbacks[0].Author)
	require.NotNil(t, feedbacks[0].Product)
}

func TestUpdateFeedback(t *testing.T) {
	h, _, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	feedback := models.Feedback{Content: "ok", Rating: 3, AuthorID: user.ID, ProductID: product.ID}
	require.NoError(t, h.DB.Create(&feedback).Error)

	rec, c := doJSONRequest(t, e, http.MethodPut, "/api/feedbacks/1", map[string]interface{}{"rating": 6})
	withID(c, "1")
	require.NoError(t, h.UpdateFeedback(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Rating must be between 0 and 5", decodeError(t, rec))

	rec, c = doJSONRequest(t, e, http.MethodPut, "/api/feedbacks/1", map[string]interface{}{"rating": 1})
	withID(c, "1")
	require.NoError(t, h.UpdateFeedback(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, 1, updated.Rating)
	require.Equal(t, "ok", updated.Content, "omitted field must stay unchanged")

	rec, c = doJSONRequest(t, e, http.MethodPut, "/api/feedbacks/9", map[string]interface{}{"rating": 1})
	withID(c, "9")
	require.NoError(t, h.UpdateFeedback(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Feedback not found", decodeError(t, rec))
}

func TestDeleteFeedbackNotIdempotent(t *testing.T) {
	h, _, e := newFeedbackHandler(t)
	user, product := seedAuthorAndProduct(t, h)

	feedback := models.Feedback{Content: "ok", Rating: 3, AuthorID: user.ID, ProductID: product.ID}
	require.NoError(t, h.DB.Create(&feedback).Error)

	rec, c := doJSONRequest(t, e, http.MethodDelete, "/api/feedbacks/1", nil)
	withID(c, "1")
	require.NoError(t, h.DeleteFeedback(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, c = doJSONRequest(t, e, http.MethodDelete, "/api/feedbacks/1", nil)
	withID(c, "1")
	require.NoError(t, h.DeleteFeedback(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Feedback not found", decodeError(t, rec))
}
