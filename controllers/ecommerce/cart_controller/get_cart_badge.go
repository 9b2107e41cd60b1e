package cart_controller

import (
	"net/http"
	"strings"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var cartSource services.CartSource

func InitCartSource(source services.CartSource) {
	cartSource = source
}

// GetCartBadge godoc
// @Summary Get the header cart counter
// @Description Number of items in the cart. An unknown or unreachable cart counts as empty.
// @Tags store
// @Produce json
// @Param cart_id query string false "Storefront cart ID"
// @Success 200 {object} models.ApiResponse{data=models.CartBadge}
// @Router /store/cart/badge [get]
func GetCartBadge(c *gin.Context) {
	cartID := strings.TrimSpace(c.Query("cart_id"))
	badge := models.CartBadge{}

	if cartID != "" && cartSource != nil {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		count, err := cartSource.CartTotalQuantity(ctx, cartID)
		if err != nil {
			config.Logger.Warn("⚠️ cart quantity unavailable", zap.Error(err))
		} else {
			badge.Count = count
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart badge fetched successfully", badge))
}
