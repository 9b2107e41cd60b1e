package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/services"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main fills the catalog mirror with a demo pick-and-mix collection so the
// service can be run without Storefront API credentials.
// Usage: go run ./cmd/seed --handle bland-selv-slik
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var handle string
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Seed the catalog mirror with demo candy",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), handle)
		},
	}
	cmd.Flags().StringVar(&handle, "handle", "bland-selv-slik", "collection handle to seed")
	return cmd
}

func run(ctx context.Context, handle string) error {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CANDYEXPRESS - Catalog Mirror Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.LoadAppConfig()
	logger := config.InitLogger(cfg.AppEnv, cfg.Verbose)
	defer config.SyncLogger()

	if !config.InitDB() {
		return fmt.Errorf("STOREFRONT_DB_URL must be set to seed the mirror")
	}
	defer config.CloseDB()

	store := services.NewGormCatalogStore(config.StorefrontGorm)
	if err := store.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate mirror: %w", err)
	}

	collection := services.DemoCollection(handle)
	if err := store.SaveCollection(ctx, collection, models.PageRequest{}); err != nil {
		return fmt.Errorf("seed collection: %w", err)
	}

	logger.Info("✓ Seeded catalog mirror",
		zap.String("handle", collection.Handle),
		zap.Int("products", len(collection.Products)))
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Collection '%s' seeded with %d products\n", collection.Handle, len(collection.Products))
	fmt.Println("════════════════════════════════════════════════════════════")
	return nil
}
