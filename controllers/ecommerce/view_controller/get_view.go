package view_controller

import (
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
)

// GetView godoc
// @Summary Get a catalog view
// @Tags store views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} models.ApiResponse{data=models.ViewSnapshot}
// @Failure 404 {object} models.ApiResponse
// @Router /store/views/{id} [get]
func GetView(c *gin.Context) {
	view, ok := lookupView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "View fetched successfully", view.Snapshot()))
}

func lookupView(c *gin.Context) (*services.ViewController, bool) {
	if registry == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "View not found"))
		return nil, false
	}
	view, err := registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "View not found"))
		return nil, false
	}
	return view, true
}
