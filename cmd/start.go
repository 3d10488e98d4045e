package cmd

import (
	"context"
	"log"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/database"
	"github.com/baonguyen204/doc-summarizer-be/handler"
	"github.com/baonguyen204/doc-summarizer-be/repository"
	"github.com/baonguyen204/doc-summarizer-be/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document summarizer server",
	Long:  `Starts the server that handles document uploads and summary search`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize gateways
		storageService, err := service.NewStorageService(ctx, cfg.StorageConfig)
		if err != nil {
			log.Fatalf("Failed to create storage service: %v", err)
		}
		extractionService := service.NewExtractionService(cfg.ExtractionConfig)
		aiService, err := service.NewSummarizer(ctx, cfg.AIConfig)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}
		defer service.CloseSummarizer(aiService)
		weaviateDb, err := database.NewWeaviateStore(cfg.SearchConfig)
		if err != nil {
			log.Fatalf("Failed to connect to Weaviate database: %v", err)
		}

		// Ingestion records are optional bookkeeping
		var documentRepo repository.DocumentRepo
		if cfg.MongoURI != "" {
			mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
			if err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			documentRepo = repository.NewDocumentRepo(mongoClient.Database("summarizer"))
		} else {
			log.Println("MONGODB_URI not set, ingestion records disabled")
		}

		ingestService := service.NewIngestService(storageService, extractionService, aiService, weaviateDb, documentRepo)
		searchService := service.NewSearchService(cfg.SearchConfig, weaviateDb)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		documentHandler := handler.NewDocumentHandler(ingestService)
		searchHandler := handler.NewSearchHandler(searchService, documentRepo)

		// Setup Gin router
		router := gin.Default()

		router.Use(corsHandler.CorsMiddleware)

		api := router.Group("/api")
		{
			api.POST("/upload", documentHandler.UploadDocumentHandler)
			api.GET("/search", searchHandler.HandleSearch)
			api.GET("/documents", searchHandler.HandleListDocuments)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
