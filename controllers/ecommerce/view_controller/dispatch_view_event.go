package view_controller

import (
	"errors"
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
)

// DispatchViewEvent godoc
// @Summary Send a UI event to a catalog view
// @Description Applies one event (open_search, close_search, open_filter_panel, close_filter_panel,
// @Description set_text_query, toggle_category, toggle_group, next_step, prev_step) and returns the new snapshot.
// @Tags store views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param event body models.ViewEvent true "Event"
// @Success 200 {object} models.ApiResponse{data=models.ViewSnapshot}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/views/{id}/events [post]
func DispatchViewEvent(c *gin.Context) {
	view, ok := lookupView(c)
	if !ok {
		return
	}

	var ev models.ViewEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if err := view.Dispatch(ev); err != nil {
		if errors.Is(err, services.ErrUnknownViewEvent) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to apply event"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Event applied", view.Snapshot()))
}
