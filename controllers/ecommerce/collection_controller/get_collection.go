package collection_controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CollectionsIndexPath is where a request without a usable handle is sent.
const CollectionsIndexPath = "/api/v1/store/collections"

var (
	catalogSource  services.CatalogSource
	categorySource services.CategorySource
)

// InitCollectionSources sets the catalog and category directory the handlers read from.
func InitCollectionSources(catalog services.CatalogSource, categories services.CategorySource) {
	catalogSource = catalog
	categorySource = categories
}

// GetCollection godoc
// @Summary Get a filtered collection page
// @Description Get one page of a collection with its products partitioned into category sections.
// @Description q narrows by product title, tag (repeatable) selects categories.
// @Tags store
// @Produce json
// @Param handle path string true "Collection handle"
// @Param q query string false "Title search, case-insensitive"
// @Param tag query []string false "Selected category tags (repeatable ?tag=a&tag=b)"
// @Param after query string false "Cursor of the next page"
// @Param before query string false "Cursor of the previous page"
// @Success 200 {object} models.ApiResponse{data=models.CollectionResponse}
// @Success 302 "Blank handle, redirected to the collections index"
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/collections/{handle} [get]
func GetCollection(c *gin.Context) {
	handle := strings.TrimSpace(c.Param("handle"))
	if handle == "" {
		c.Redirect(http.StatusFound, CollectionsIndexPath)
		return
	}

	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid page cursor"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The collection and the directory are independent; fetch them together.
	var (
		collection *models.Collection
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collection, err = fetchCollection(gctx, handle, page)
		return err
	})
	g.Go(func() error {
		categories = services.LoadCategoriesOrEmpty(gctx, categorySource, config.Logger)
		return nil
	})
	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingHandle):
			c.Redirect(http.StatusFound, CollectionsIndexPath)
		case errors.Is(err, services.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
		default:
			config.Logger.Error("❌ collection fetch failed", zap.String("handle", handle), zap.Error(err))
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch collection"))
		}
		return
	}

	tags := c.QueryArray("tag")
	selected := services.FilterBySelection(collection.Products, tags)
	sections := services.FilterCatalog(selected, categories, c.Query("q"), tags)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Collection fetched successfully", models.CollectionResponse{
		Collection: *collection,
		Sections:   sections,
		Groups:     services.DeriveGroups(categories),
	}, &collection.PageInfo))
}

func fetchCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error) {
	if catalogSource == nil {
		return nil, services.ErrStorefrontDisabled
	}
	return catalogSource.FetchCollection(ctx, handle, page)
}
