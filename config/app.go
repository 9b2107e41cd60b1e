package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultMenuItemsURL is the candy menu endpoint the category directory is read from.
	DefaultMenuItemsURL = "https://staging.candyexpress.com/api/v1/menu-item"
	// DefaultStorefrontAPIVersion is the Storefront API version used for GraphQL calls.
	DefaultStorefrontAPIVersion = "2024-01"
)

// AppConfig holds everything the storefront service reads from the environment.
type AppConfig struct {
	Port    string
	AppEnv  string
	Verbose bool

	MenuItemsURL string

	StoreDomain          string
	StorefrontToken      string
	StorefrontAPIVersion string

	AllowedOrigins []string

	CategoryCacheTTL time.Duration
	HTTPTimeout      time.Duration
	ViewIdleTTL      time.Duration

	RateLimit       int
	RateLimitWindow time.Duration
}

// LoadAppConfig reads AppConfig from the environment, applying local defaults.
func LoadAppConfig() AppConfig {
	return AppConfig{
		Port:                 getEnv("PORT", "8081"),
		AppEnv:               getEnv("APP_ENV", "development"),
		Verbose:              getEnvBool("VERBOSE", false),
		MenuItemsURL:         getEnv("MENU_ITEMS_URL", DefaultMenuItemsURL),
		StoreDomain:          os.Getenv("PUBLIC_STORE_DOMAIN"),
		StorefrontToken:      os.Getenv("PUBLIC_STOREFRONT_API_TOKEN"),
		StorefrontAPIVersion: getEnv("STOREFRONT_API_VERSION", DefaultStorefrontAPIVersion),
		AllowedOrigins:       splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		CategoryCacheTTL:     getEnvDuration("CATEGORY_CACHE_TTL", 5*time.Minute),
		HTTPTimeout:          getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		ViewIdleTTL:          getEnvDuration("VIEW_IDLE_TTL", 30*time.Minute),
		RateLimit:            getEnvInt("RATE_LIMIT", 100),
		RateLimitWindow:      getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// WithTimeout returns a context with a 10s timeout for outbound calls made on behalf of a request.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
