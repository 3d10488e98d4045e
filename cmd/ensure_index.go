package cmd

import (
	"context"
	"log"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/database"
	"github.com/spf13/cobra"
)

// ensureIndexCmd represents the ensure-index command
var ensureIndexCmd = &cobra.Command{
	Use:   "ensure-index",
	Short: "Provision the search index schema",
	Long: `Creates the summary class in the search backend if it does not exist
yet. Safe to run repeatedly; an existing class is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		weaviateDb, err := database.NewWeaviateStore(cfg.SearchConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate database: %v", err)
		}

		if err := weaviateDb.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to provision index: %v", err)
		}
		log.Printf("Class %s is ready", weaviateDb.ClassName())
	},
}

func init() {
	rootCmd.AddCommand(ensureIndexCmd)
}
