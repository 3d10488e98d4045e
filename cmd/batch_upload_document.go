package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/spf13/cobra"
)

// batchUploadDocumentCmd represents the batch-upload-document command
var batchUploadDocumentCmd = &cobra.Command{
	Use:   "batch-upload-document",
	Short: "Ingest every document in a directory",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			log.Fatal("--dir is required")
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

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}

		failed := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				log.Printf("Skipping %s: %v", entry.Name(), err)
				failed++
				continue
			}
			summary, err := ingestService.Ingest(ctx, entry.Name(), data)
			if err != nil {
				log.Printf("Failed to ingest %s: %v", entry.Name(), err)
				failed++
				continue
			}
			fmt.Printf("%s: %s\n", entry.Name(), summary)
		}
		if failed > 0 {
			log.Printf("%d file(s) failed", failed)
			cleanup()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchUploadDocumentCmd)
	batchUploadDocumentCmd.Flags().StringP("dir", "d", "", "directory of documents to ingest")
}
