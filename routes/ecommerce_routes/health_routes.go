package ecommerce_routes

import (
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/health_controller"
	"github.com/gin-gonic/gin"
)

func SetupHealthRoutes(router *gin.RouterGroup) {
	router.GET("/health", health_controller.GetHealth)
}
