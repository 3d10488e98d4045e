package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/baonguyen204/doc-summarizer-be/config"
)

const (
	extractionModel      = "prebuilt-read"
	extractionAPIVersion = "2024-11-30"
)

// ExtractionService talks to a Document Intelligence style analysis backend:
// submit a readable URL, follow the returned operation, poll until the
// backend reports a terminal status.
type ExtractionService struct {
	endpoint     string
	apiKey       string
	httpClient   *http.Client
	pollInterval time.Duration
}

type analyzeRequest struct {
	URLSource string `json:"urlSource"`
}

type analyzeResultStatus struct {
	Status        string `json:"status"`
	AnalyzeResult struct {
		Pages []struct {
			Lines []struct {
				Content string `json:"content"`
			} `json:"lines"`
		} `json:"pages"`
	} `json:"analyzeResult"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewExtractionService(cfg config.ExtractionConfig) *ExtractionService {
	return &ExtractionService{
		endpoint:     strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:       cfg.APIKey,
		httpClient:   http.DefaultClient,
		pollInterval: 2 * time.Second,
	}
}

// ExtractText analyzes the document behind url and returns all text lines of
// all pages, in document order, joined with single spaces. A document with no
// lines yields an empty string, not an error.
func (s *ExtractionService) ExtractText(ctx context.Context, url string) (string, error) {
	operationURL, err := s.submitAnalyze(ctx, url)
	if err != nil {
		return "", err
	}

	result, err := s.waitForCompletion(ctx, operationURL)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, page := range result.AnalyzeResult.Pages {
		for _, line := range page.Lines {
			lines = append(lines, line.Content)
		}
	}
	return strings.Join(lines, " "), nil
}

func (s *ExtractionService) submitAnalyze(ctx context.Context, url string) (string, error) {
	body, err := json.Marshal(analyzeRequest{URLSource: url})
	if err != nil {
		return "", err
	}

	analyzeURL := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		s.endpoint, extractionModel, extractionAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzeURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit document for analysis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("analysis request rejected with status %d: %s", resp.StatusCode, string(detail))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("analysis response missing Operation-Location header")
	}
	return operationURL, nil
}

func (s *ExtractionService) waitForCompletion(ctx context.Context, operationURL string) (*analyzeResultStatus, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", s.apiKey)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to poll analysis operation: %w", err)
		}

		// A non-2xx poll response is terminal, e.g. an expired operation or a
		// revoked key. Its body has no "status" field, so it must not fall
		// through to another poll round.
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			resp.Body.Close()
			return nil, fmt.Errorf("analysis operation returned status %d: %s", resp.StatusCode, string(detail))
		}

		var status analyzeResultStatus
		err = json.NewDecoder(resp.Body).Decode(&status)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode analysis status: %w", err)
		}

		switch status.Status {
		case "succeeded":
			return &status, nil
		case "failed":
			return nil, fmt.Errorf("analysis failed: %s, %s", status.Error.Code, status.Error.Message)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}
