// @title CandyExpress Storefront API
// @version 1.0
// @description Candy catalog filtering, category directory and cart badge for the CandyExpress storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	category_cache "github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/cache"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/cart_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/category_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/collection_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/ecommerce/view_controller"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/controllers/health_controller"
	_ "github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/docs"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/middleware"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/routes/ecommerce_routes"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.LoadAppConfig()
	logger := config.InitLogger(cfg.AppEnv, cfg.Verbose)
	defer config.SyncLogger()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis connection (optional: shared menu cache + rate limiting)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Category directory: menu endpoint behind the in-process and Redis caches
	menu := services.NewMenuClient(cfg.MenuItemsURL, cfg.HTTPTimeout, logger)
	categories := services.NewCachedCategorySource(
		menu,
		category_cache.NewDirectoryCache(cfg.CategoryCacheTTL),
		category_cache.NewRedisDirectory(config.RedisClient, cfg.CategoryCacheTTL),
		logger,
	)

	// Catalog: Storefront API, mirrored to Postgres when a database is configured
	storefront := services.NewStorefrontClient(cfg.StoreDomain, cfg.StorefrontAPIVersion, cfg.StorefrontToken, cfg.HTTPTimeout, logger)
	var catalog services.CatalogSource = storefront
	if config.InitDB() {
		defer config.CloseDB()
		store := services.NewGormCatalogStore(config.StorefrontGorm)
		if err := store.AutoMigrate(); err != nil {
			logger.Fatal("❌ catalog mirror migration failed", zap.Error(err))
		}
		catalog = services.NewMirroredCatalogSource(storefront, store, logger)
		logger.Info("✅ Catalog mirror enabled")
	}
	if cfg.StoreDomain == "" {
		logger.Warn("⚠️ PUBLIC_STORE_DOMAIN not set, collection routes will fail until configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	views := services.NewViewRegistry(logger)
	defer views.CloseAll()
	go views.RunSweeper(ctx, time.Minute, cfg.ViewIdleTTL)

	category_controller.InitCategorySource(categories)
	collection_controller.InitCollectionSources(catalog, categories)
	view_controller.InitViews(views, catalog, categories)
	cart_controller.InitCartSource(storefront)
	health_controller.InitHealth(views)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), cors.New(corsCfg))

	api := router.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api, cfg.RateLimit, cfg.RateLimitWindow)
	ecommerce_routes.SetupHealthRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("🛑 Shutting down")

	shutdownCtx, cancel := config.WithCustomTimeout(15 * time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ graceful shutdown failed", zap.Error(err))
	}
}
