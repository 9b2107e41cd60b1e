package category_controller

import (
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
)

var categorySource services.CategorySource

// InitCategorySource sets the directory the handlers read from.
func InitCategorySource(source services.CategorySource) {
	categorySource = source
}

// GetCategories godoc
// @Summary Get candy categories
// @Description Get the candy category directory and its groups. An unreachable menu endpoint yields empty lists.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CategoryDirectoryResponse}
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := services.LoadCategoriesOrEmpty(ctx, categorySource, config.Logger)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", models.CategoryDirectoryResponse{
		Categories: categories,
		Groups:     services.DeriveGroups(categories),
	}))
}
