package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/database"
	"github.com/baonguyen204/doc-summarizer-be/service"
	"github.com/spf13/cobra"
)

// uploadDocumentCmd represents the upload-document command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Ingest a local document through the pipeline",
	Long: `Runs the full ingestion pipeline for a local file: upload to the
object store, extract text, summarize and index the summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		ctx := context.Background()
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ingestService, cleanup, err := buildIngestService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}
		defer cleanup()

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		summary, err := ingestService.Ingest(ctx, filepath.Base(filePath), data)
		if err != nil {
			log.Fatalf("Ingestion failed: %v", err)
		}
		fmt.Println(summary)
	},
}

// buildIngestService wires the full pipeline for CLI ingestion. The returned
// cleanup releases the summarizer backend and must run once ingestion is done.
func buildIngestService(ctx context.Context, cfg *config.Config) (*service.IngestService, func(), error) {
	storageService, err := service.NewStorageService(ctx, cfg.StorageConfig)
	if err != nil {
		return nil, nil, err
	}
	extractionService := service.NewExtractionService(cfg.ExtractionConfig)
	aiService, err := service.NewSummarizer(ctx, cfg.AIConfig)
	if err != nil {
		return nil, nil, err
	}
	weaviateDb, err := database.NewWeaviateStore(cfg.SearchConfig)
	if err != nil {
		service.CloseSummarizer(aiService)
		return nil, nil, err
	}
	cleanup := func() { service.CloseSummarizer(aiService) }
	return service.NewIngestService(storageService, extractionService, aiService, weaviateDb, nil), cleanup, nil
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)
	uploadDocumentCmd.Flags().StringP("file", "f", "", "path to the document to ingest")
}
