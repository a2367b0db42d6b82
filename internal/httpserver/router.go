package httpserver

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/skotch-labs/shop-backoffice/docs" // generated swagger doc
	"github.com/skotch-labs/shop-backoffice/internal/handlers"
	"github.com/skotch-labs/shop-backoffice/internal/service/token"
)

type Deps struct {
	UserHandler     *handlers.UserHandler
	CategoryHandler *handlers.CategoryHandler
	BrandHandler    *handlers.BrandHandler
	ProductHandler  *handlers.ProductHandler
	FeedbackHandler *handlers.FeedbackHandler
	SearchHandler   *handlers.SearchHandler
	AuthHandler     *handlers.AuthHandler
	StatsHandler    *handlers.StatsHandler
	TokenService    *token.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	users := api.Group("/users")
	users.GET("", d.UserHandler.GetUsers)
	users.POST("", d.UserHandler.CreateUser)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.POST("", d.CategoryHandler.CreateCategory)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	brands := api.Group("/brands")
	brands.GET("", d.BrandHandler.GetBrands)
	brands.POST("", d.BrandHandler.CreateBrand)
	brands.GET("/:id", d.BrandHandler.GetBrand)
	brands.PUT("/:id", d.BrandHandler.UpdateBrand)
	brands.DELETE("/:id", d.BrandHandler.DeleteBrand)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	feedbacks := api.Group("/feedbacks")
	feedbacks.GET("", d.FeedbackHandler.GetFeedbacks)
	feedbacks.POST("", d.FeedbackHandler.CreateFeedback)
	feedbacks.GET("/:id", d.FeedbackHandler.GetFeedback)
	feedbacks.PUT("/:id", d.FeedbackHandler.UpdateFeedback)
	feedbacks.DELETE("/:id", d.FeedbackHandler.DeleteFeedback)

	if d.SearchHandler != nil {
		api.GET("/search", d.SearchHandler.Search)
	}

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)

	admin := api.Group("/admin", d.TokenService.RequireAdmin)
	admin.GET("/stats", d.StatsHandler.Stats)
}
