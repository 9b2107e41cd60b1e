// Command browse is a terminal catalog browser: it loads one collection page
// and the candy category directory, then filters them interactively.
//
// Usage:
//
//	go run ./cmd/browse --handle bland-selv-slik
//	go run ./cmd/browse --demo
package main

import (
	"context"
	"fmt"
	"os"

	category_cache "github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/cache"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

type browseOptions struct {
	handle  string
	after   string
	before  string
	menuURL string
	demo    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := browseOptions{}
	cmd := &cobra.Command{
		Use:          "browse",
		Short:        "Browse and filter a candy collection in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.handle, "handle", "bland-selv-slik", "collection handle")
	cmd.Flags().StringVar(&opts.after, "after", "", "cursor of the page after")
	cmd.Flags().StringVar(&opts.before, "before", "", "cursor of the page before")
	cmd.Flags().StringVar(&opts.menuURL, "menu-url", "", "menu endpoint (defaults to MENU_ITEMS_URL)")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "use the built-in demo catalog and categories")
	return cmd
}

func runBrowse(ctx context.Context, opts browseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.LoadAppConfig()
	if opts.menuURL != "" {
		cfg.MenuItemsURL = opts.menuURL
	}

	// The TUI owns stdout, so logs only go out when asked for.
	logger := zap.NewNop()
	if cfg.Verbose {
		logger = config.InitLogger(cfg.AppEnv, true)
		defer config.SyncLogger()
	}

	catalog, categories := sources(cfg, opts.demo, logger)

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
	defer cancel()
	collection, err := catalog.FetchCollection(fetchCtx, opts.handle, models.PageRequest{After: opts.after, Before: opts.before})
	if err != nil {
		return fmt.Errorf("load collection %q: %w", opts.handle, err)
	}

	view := services.NewViewController(collection.Products, categories,
		services.WithCollectionHandle(collection.Handle),
		services.WithViewLogger(logger),
	)
	defer view.Close()
	view.Mount(ctx)

	title := collection.Title
	if title == "" {
		title = collection.Handle
	}
	_, err = tea.NewProgram(tui.NewModel(view, title), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func sources(cfg config.AppConfig, demo bool, logger *zap.Logger) (services.CatalogSource, services.CategorySource) {
	if demo {
		return services.DemoCatalogSource{}, services.StaticCategorySource(services.DemoCategories())
	}
	menu := services.NewMenuClient(cfg.MenuItemsURL, cfg.HTTPTimeout, logger)
	categories := services.NewCachedCategorySource(menu, category_cache.NewDirectoryCache(cfg.CategoryCacheTTL), nil, logger)
	storefront := services.NewStorefrontClient(cfg.StoreDomain, cfg.StorefrontAPIVersion, cfg.StorefrontToken, cfg.HTTPTimeout, logger)
	return storefront, categories
}
