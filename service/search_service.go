package service

import (
	"context"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/types"
)

// SummarySearcher executes free-text queries over indexed summaries.
type SummarySearcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// SearchService validates search configuration before delegating to the
// index. Each missing setting fails on its own, before any network call.
type SearchService struct {
	cfg      config.SearchConfig
	searcher SummarySearcher
}

func NewSearchService(cfg config.SearchConfig, searcher SummarySearcher) *SearchService {
	return &SearchService{
		cfg:      cfg,
		searcher: searcher,
	}
}

func (s *SearchService) Search(ctx context.Context, query string) ([]string, error) {
	if s.cfg.Host == "" {
		return nil, types.NewPipelineError(types.FailureConfiguration, "search host is not configured", nil)
	}
	if s.cfg.ClassName == "" {
		return nil, types.NewPipelineError(types.FailureConfiguration, "search class name is not configured", nil)
	}
	if s.cfg.APIKey == "" {
		return nil, types.NewPipelineError(types.FailureConfiguration, "search API key is not configured", nil)
	}

	return s.searcher.Search(ctx, query)
}
