package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/service"
	"github.com/baonguyen204/doc-summarizer-be/types"
	"github.com/gin-gonic/gin"
)

type stubStorage struct {
	saveCalls int
}

func (s *stubStorage) Save(ctx context.Context, name string, data []byte) error {
	s.saveCalls++
	return nil
}

func (s *stubStorage) ReadHandle(ctx context.Context, name string) (string, error) {
	return "https://example.com/read/" + name, nil
}

type stubExtractor struct{ text string }

func (s *stubExtractor) ExtractText(ctx context.Context, url string) (string, error) {
	return s.text, nil
}

type stubAI struct {
	summary string
	err     error
}

func (s *stubAI) Summarize(ctx context.Context, text string) (string, error) {
	return s.summary, s.err
}

type stubIndex struct{ indexed []types.SearchRecord }

func (s *stubIndex) EnsureSchema(ctx context.Context) error { return nil }

func (s *stubIndex) IndexSummary(ctx context.Context, record types.SearchRecord) error {
	s.indexed = append(s.indexed, record)
	return nil
}

type stubSearcher struct {
	results []string
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]string, error) {
	return s.results, s.err
}

func newUploadRouter(storage *stubStorage, ai *stubAI, index *stubIndex) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ingestService := service.NewIngestService(storage, &stubExtractor{text: "Q3 revenue grew 10%."}, ai, index, nil)
	h := NewDocumentHandler(ingestService)
	router := gin.New()
	router.POST("/api/upload", h.UploadDocumentHandler)
	return router
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadDocumentSuccess(t *testing.T) {
	storage := &stubStorage{}
	index := &stubIndex{}
	router := newUploadRouter(storage, &stubAI{summary: "Revenue grew 10% in Q3."}, index)

	body, contentType := multipartUpload(t, "report.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp types.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Summary != "Revenue grew 10% in Q3." {
		t.Errorf("summary = %q", resp.Summary)
	}
	if len(index.indexed) != 1 || index.indexed[0].Content != resp.Summary {
		t.Errorf("exactly one record with the summary must be indexed, got %v", index.indexed)
	}
}

func TestUploadDocumentMissingFile(t *testing.T) {
	storage := &stubStorage{}
	router := newUploadRouter(storage, &stubAI{summary: "x"}, &stubIndex{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if storage.saveCalls != 0 {
		t.Error("no remote call may happen without a file")
	}
}

func TestUploadDocumentEmptyFile(t *testing.T) {
	storage := &stubStorage{}
	router := newUploadRouter(storage, &stubAI{summary: "x"}, &stubIndex{})

	body, contentType := multipartUpload(t, "report.pdf", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if storage.saveCalls != 0 {
		t.Error("no remote call may happen for an empty file")
	}
}

func TestUploadDocumentStageFailure(t *testing.T) {
	router := newUploadRouter(&stubStorage{}, &stubAI{err: errors.New("model overloaded")}, &stubIndex{})

	body, contentType := multipartUpload(t, "report.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "summarization error") {
		t.Errorf("error must identify the failing stage, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "model overloaded") {
		t.Errorf("error must carry the backend detail, got %s", w.Body.String())
	}
}

func newSearchRouter(cfg config.SearchConfig, searcher *stubSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSearchHandler(service.NewSearchService(cfg, searcher), nil)
	router := gin.New()
	router.GET("/api/search", h.HandleSearch)
	router.GET("/api/documents", h.HandleListDocuments)
	return router
}

func TestSearchSuccess(t *testing.T) {
	cfg := config.SearchConfig{Host: "http://localhost:8080", APIKey: "k", ClassName: "DocumentSummary"}
	router := newSearchRouter(cfg, &stubSearcher{results: []string{"Revenue grew 10% in Q3."}})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=revenue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp types.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 || resp.Results[0] != "Revenue grew 10% in Q3." {
		t.Errorf("results = %v", resp.Results)
	}
}

func TestSearchNoHitsReturnsEmptyList(t *testing.T) {
	cfg := config.SearchConfig{Host: "http://localhost:8080", APIKey: "k", ClassName: "DocumentSummary"}
	router := newSearchRouter(cfg, &stubSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=nothing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Errorf("results must be an empty list, got %s", w.Body.String())
	}
}

func TestSearchIncompleteConfiguration(t *testing.T) {
	cfg := config.SearchConfig{APIKey: "k", ClassName: "DocumentSummary"}
	router := newSearchRouter(cfg, &stubSearcher{results: []string{"hit"}})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=revenue", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "host") {
		t.Errorf("error must name the missing setting, got %s", w.Body.String())
	}
}

func TestListDocumentsDisabled(t *testing.T) {
	cfg := config.SearchConfig{Host: "h", APIKey: "k", ClassName: "C"}
	router := newSearchRouter(cfg, &stubSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}
}
