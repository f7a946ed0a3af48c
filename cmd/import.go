package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"catalog-importer/core/config"
	"catalog-importer/core/database"
	"catalog-importer/core/logger"
	"catalog-importer/core/storage"

	"catalog-importer/feature/catalog"
	"catalog-importer/feature/importer"
	"catalog-importer/feature/media"

	"github.com/spf13/cobra"
)

var (
	importISBN string
	importOLID string
)

// importCmd runs a single ingestion without starting the HTTP server.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import one book from the catalog",
	Long: `Resolves a book by ISBN or edition identifier, ingests its work,
authors, subjects, and editions, and prints the result as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if importISBN == "" && importOLID == "" {
			return fmt.Errorf("either --isbn or --olid is required")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		catalogClient := catalog.NewClient(cfg.Catalog)
		pipeline := media.NewPipeline(store, cfg.Storage.Bucket, db, cfg.Media, logg)
		svc := importer.NewService(catalogClient, pipeline, importer.NewGormStore(db), logg)

		res, err := runImport(ctx, svc)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func runImport(ctx context.Context, svc *importer.Service) (*importer.Result, error) {
	if importISBN != "" {
		return svc.ImportByISBN(ctx, importISBN)
	}
	return svc.ImportByOLID(ctx, importOLID)
}

func init() {
	importCmd.Flags().StringVar(&importISBN, "isbn", "", "ISBN-10 or ISBN-13 to import")
	importCmd.Flags().StringVar(&importOLID, "olid", "", "Edition identifier to import (e.g. OL7353617M)")
	RootCmd.AddCommand(importCmd)
}
