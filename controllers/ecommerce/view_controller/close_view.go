package view_controller

import (
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/gin-gonic/gin"
)

// CloseView godoc
// @Summary Close a catalog view
// @Description Tears the view down. A directory fetch still in flight is discarded.
// @Tags store views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/views/{id} [delete]
func CloseView(c *gin.Context) {
	if registry == nil || registry.Remove(c.Param("id")) != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "View not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "View closed", nil))
}
