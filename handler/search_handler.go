package handler

import (
	"net/http"

	"github.com/baonguyen204/doc-summarizer-be/repository"
	"github.com/baonguyen204/doc-summarizer-be/service"
	"github.com/baonguyen204/doc-summarizer-be/types"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
	documentRepo  repository.DocumentRepo
}

func NewSearchHandler(searchService *service.SearchService, documentRepo repository.DocumentRepo) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		documentRepo:  documentRepo,
	}
}

// HandleSearch answers free-text queries over the indexed summaries, in the
// backend's ranking order.
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	query := c.Query("q")

	results, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	if results == nil {
		results = []string{}
	}
	c.JSON(http.StatusOK, types.SearchResponse{
		Results: results,
	})
}

// HandleListDocuments returns the most recent ingestion records.
func (h *SearchHandler) HandleListDocuments(c *gin.Context) {
	if h.documentRepo == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error: "Ingestion records are not enabled",
		})
		return
	}

	records, err := h.documentRepo.ListRecords(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "Failed to list documents: " + err.Error(),
		})
		return
	}

	documents := make([]types.IngestionRecord, 0, len(records))
	for _, record := range records {
		documents = append(documents, *record)
	}
	c.JSON(http.StatusOK, types.DocumentsResponse{
		Documents: documents,
	})
}
