package health_controller

import (
	"context"
	"net/http"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-gonic/gin"
)

var (
	registry *services.ViewRegistry

	pingDB    = config.PingDB
	pingRedis = config.PingRedis
)

func InitHealth(views *services.ViewRegistry) {
	registry = views
}

// GetHealth godoc
// @Summary Service health
// @Description Pings the catalog mirror database and Redis. Disabled backends report "disabled".
// @Tags health
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.HealthResponse}
// @Failure 503 {object} models.ApiResponse{data=models.HealthResponse}
// @Router /health [get]
func GetHealth(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	health := models.HealthResponse{
		Status:   "ok",
		Database: probe(ctx, config.StorefrontDB != nil, pingDB),
		Redis:    probe(ctx, config.RedisClient != nil, pingRedis),
	}
	if registry != nil {
		health.Views = registry.Len()
	}

	if health.Database == "down" || health.Redis == "down" {
		health.Status = "degraded"
		resp := models.ErrorResponse(c, "Service degraded")
		resp.Data = health
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service healthy", health))
}

func probe(ctx context.Context, enabled bool, ping func(context.Context) error) string {
	if !enabled {
		return "disabled"
	}
	if err := ping(ctx); err != nil {
		return "down"
	}
	return "ok"
}
