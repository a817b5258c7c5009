package handler

import (
	"net/http"

	"github.com/Santykk/MERCADEO/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *AuthHandler
	Orders   *OrderHandler
	Products *ProductHandler
	Category *CategoryHandler
	Wishlist *WishlistHandler
	Settings *SettingsHandler
}

// NewRouter assembles the HTTP surface. Identity resolution runs on every
// request; per-group guards enforce authentication and the admin role.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	// Identity must be resolved before the limiter so authenticated callers
	// are bucketed by user id rather than shared IP.
	r.Use(middleware.Auth())
	r.Use(middleware.RateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
	}

	products := r.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.Get)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", h.Category.List)
	}

	orders := r.Group("/orders", middleware.RequireAuth())
	{
		orders.POST("", h.Orders.Create)
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.GET("/:id/comments", h.Orders.ListComments)
	}

	wishlist := r.Group("/wishlist", middleware.RequireAuth())
	{
		wishlist.GET("", h.Wishlist.List)
		wishlist.POST("/sync", h.Wishlist.Sync)
		wishlist.GET("/:productId", h.Wishlist.Contains)
		wishlist.POST("/:productId", h.Wishlist.Add)
		wishlist.DELETE("/:productId", h.Wishlist.Remove)
	}

	settings := r.Group("/settings", middleware.RequireAuth())
	{
		settings.GET("", h.Settings.Get)
		settings.PATCH("", h.Settings.Update)
		settings.POST("/two-factor/enable", h.Settings.EnableTwoFactor)
		settings.POST("/two-factor/disable", h.Settings.DisableTwoFactor)
		settings.DELETE("/account", h.Settings.DeleteAccount)
	}

	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/orders", h.Orders.ListAll)
		admin.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
		admin.POST("/orders/:id/comments", h.Orders.AddComment)

		admin.POST("/products", h.Products.Create)
		admin.PATCH("/products/:id", h.Products.Update)

		admin.POST("/categories", h.Category.Create)
		admin.PATCH("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)
	}

	return r
}
