package view_controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	registry       *services.ViewRegistry
	catalogSource  services.CatalogSource
	categorySource services.CategorySource

	// mountWait bounds how long CreateView waits for the category directory
	// before answering with a snapshot that has no sections yet.
	mountWait = 2 * time.Second
)

// InitViews wires the view handlers.
func InitViews(views *services.ViewRegistry, catalog services.CatalogSource, categories services.CategorySource) {
	registry = views
	catalogSource = catalog
	categorySource = categories
}

// CreateView godoc
// @Summary Open a catalog view
// @Description Open a stateful filter view over one collection page. The category directory is
// @Description loaded in the background; categories_loaded tells whether sections are final.
// @Tags store views
// @Accept json
// @Produce json
// @Param view body models.CreateViewRequest true "Collection page to browse"
// @Success 201 {object} models.ApiResponse{data=models.ViewSnapshot}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/views [post]
func CreateView(c *gin.Context) {
	var req models.CreateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if registry == nil || catalogSource == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog views are not available"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	collection, err := catalogSource.FetchCollection(ctx, req.Handle, models.PageRequest{After: req.After, Before: req.Before})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingHandle):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Collection handle is required"))
		case errors.Is(err, services.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Collection not found"))
		default:
			config.Logger.Error("❌ collection fetch failed", zap.String("handle", req.Handle), zap.Error(err))
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch collection"))
		}
		return
	}

	view := services.NewViewController(collection.Products, categorySource,
		services.WithViewID(registry.NewID()),
		services.WithCollectionHandle(collection.Handle),
		services.WithViewLogger(config.Logger),
	)
	registry.Add(view)

	// The view outlives this request, so its directory fetch must not inherit the request context.
	mounted := view.Mount(context.Background())
	select {
	case <-mounted:
	case <-time.After(mountWait):
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "View created successfully", view.Snapshot()))
}
