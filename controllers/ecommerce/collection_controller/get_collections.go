package collection_controller

import (
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/gin-gonic/gin"
)

// GetCollections godoc
// @Summary Collections index
// @Description Landing point for collection requests without a handle.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/collections [get]
func GetCollections(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pass a collection handle: /store/collections/{handle}", gin.H{
		"page_size": models.CollectionPageSize,
	}))
}
