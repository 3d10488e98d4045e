package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/baonguyen204/doc-summarizer-be/repository"
	"github.com/baonguyen204/doc-summarizer-be/types"
	"github.com/baonguyen204/doc-summarizer-be/utils"
	"github.com/google/uuid"
)

// ObjectStorage persists raw document bytes and hands out short-lived
// read-only URLs.
type ObjectStorage interface {
	Save(ctx context.Context, name string, data []byte) error
	ReadHandle(ctx context.Context, name string) (string, error)
}

// TextExtractor turns a readable document URL into one text blob.
type TextExtractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// SearchIndex is the ingestion-side view of the search backend.
type SearchIndex interface {
	EnsureSchema(ctx context.Context) error
	IndexSummary(ctx context.Context, record types.SearchRecord) error
}

// IngestService runs the pipeline: persist, authorize read, extract,
// summarize, provision index, index. Stages are strictly sequential; the
// first failure aborts the rest and earlier side effects are kept (no
// compensation, no retries).
type IngestService struct {
	storage   ObjectStorage
	extractor TextExtractor
	ai        AIService
	index     SearchIndex
	records   repository.DocumentRepo
}

func NewIngestService(
	storage ObjectStorage,
	extractor TextExtractor,
	ai AIService,
	index SearchIndex,
	records repository.DocumentRepo,
) *IngestService {
	return &IngestService{
		storage:   storage,
		extractor: extractor,
		ai:        ai,
		index:     index,
		records:   records,
	}
}

// Ingest processes one uploaded document and returns its summary.
func (s *IngestService) Ingest(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 || strings.TrimSpace(filename) == "" {
		return "", types.NewPipelineError(types.FailureInvalidInput, "no file uploaded", nil)
	}

	objectKey := utils.SanitizeFilename(filename)
	if err := s.storage.Save(ctx, objectKey, data); err != nil {
		return "", types.NewPipelineError(types.FailureStorage, "object storage error", err)
	}

	readURL, err := s.storage.ReadHandle(ctx, objectKey)
	if err != nil {
		return "", types.NewPipelineError(types.FailureStorage, "object storage error", err)
	}

	// An empty extraction result is not a failure; summarization runs on the
	// empty blob.
	text, err := s.extractor.ExtractText(ctx, readURL)
	if err != nil {
		return "", types.NewPipelineError(types.FailureExtraction, "text extraction error", err)
	}

	summary, err := s.ai.Summarize(ctx, text)
	if err != nil {
		return "", types.NewPipelineError(types.FailureSummarization, "summarization error", err)
	}

	if err := s.index.EnsureSchema(ctx); err != nil {
		return "", types.NewPipelineError(types.FailureIndexing, "index provisioning error", err)
	}

	record := types.SearchRecord{
		ID:      uuid.NewString(),
		Content: summary,
	}
	if err := s.index.IndexSummary(ctx, record); err != nil {
		return "", types.NewPipelineError(types.FailureIndexing, "indexing error", err)
	}

	s.saveRecord(ctx, record.ID, filename, objectKey, summary)

	return summary, nil
}

// saveRecord is best-effort bookkeeping after a successful pipeline run; a
// write failure never fails the request.
func (s *IngestService) saveRecord(ctx context.Context, id, filename, objectKey, summary string) {
	if s.records == nil {
		return
	}
	err := s.records.CreateRecord(ctx, &types.IngestionRecord{
		ID:        id,
		Filename:  filename,
		ObjectKey: objectKey,
		Summary:   summary,
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		log.Printf("Failed to save ingestion record for %s: %v", filename, err)
	}
}
