package handler

import (
	"io"
	"net/http"

	"github.com/baonguyen204/doc-summarizer-be/service"
	"github.com/baonguyen204/doc-summarizer-be/types"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	ingestService *service.IngestService
}

func NewDocumentHandler(ingestService *service.IngestService) *DocumentHandler {
	return &DocumentHandler{
		ingestService: ingestService,
	}
}

// UploadDocumentHandler accepts one multipart file, runs the ingestion
// pipeline and responds with the generated summary. Callers get either a
// complete summary or a single descriptive error; there is no partial result.
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "No file uploaded",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error: "Failed to read uploaded file: " + err.Error(),
		})
		return
	}

	summary, err := h.ingestService.Ingest(c.Request.Context(), header.Filename, data)
	if err != nil {
		status := http.StatusInternalServerError
		if types.KindOf(err) == types.FailureInvalidInput {
			status = http.StatusBadRequest
		}
		c.JSON(status, types.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Summary: summary,
	})
}
