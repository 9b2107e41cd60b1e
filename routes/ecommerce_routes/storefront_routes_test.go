package ecommerce_routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupStorefrontRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	SetupStorefrontRoutes(api, 10, time.Minute)
	SetupHealthRoutes(api)

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		http.MethodGet + " /api/v1/store/categories",
		http.MethodGet + " /api/v1/store/collections",
		http.MethodGet + " /api/v1/store/collections/:handle",
		http.MethodPost + " /api/v1/store/views",
		http.MethodGet + " /api/v1/store/views/:id",
		http.MethodPost + " /api/v1/store/views/:id/events",
		http.MethodDelete + " /api/v1/store/views/:id",
		http.MethodGet + " /api/v1/store/cart/badge",
		http.MethodGet + " /api/v1/health",
	} {
		assert.True(t, got[want], want)
	}
}
