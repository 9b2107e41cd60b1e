package ecommerce_routes

import (
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/cart_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/category_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/collection_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/view_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public storefront routes. Only the
// stateful view routes are rate limited.
func SetupStorefrontRoutes(router *gin.RouterGroup, rateLimit int, rateWindow time.Duration) {
	store := router.Group("/store")

	store.GET("/categories", category_controller.GetCategories)

	collections := store.Group("/collections")
	{
		collections.GET("", collection_controller.GetCollections)
		collections.GET("/:handle", collection_controller.GetCollection)
	}

	views := store.Group("/views")
	views.Use(middleware.RateLimiter(rateLimit, rateWindow))
	{
		views.POST("", view_controller.CreateView)
		views.GET("/:id", view_controller.GetView)
		views.POST("/:id/events", view_controller.DispatchViewEvent)
		views.DELETE("/:id", view_controller.CloseView)
	}

	store.GET("/cart/badge", cart_controller.GetCartBadge)
}
