package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/baonguyen204/doc-summarizer-be/config"
	"github.com/baonguyen204/doc-summarizer-be/types"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

const DEFAULT_SUMMARY_CLASS = "DocumentSummary"

// WeaviateStore wraps the search index holding one object per ingested
// document. Object ID is the record key, "content" carries the summary text.
type WeaviateStore struct {
	client    *weaviate.Client
	className string
}

func NewWeaviateStore(config config.SearchConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	className := config.ClassName
	if className == "" {
		className = DEFAULT_SUMMARY_CLASS
	}

	return &WeaviateStore{
		client:    client,
		className: className,
	}, nil
}

func (s *WeaviateStore) ClassName() string {
	return s.className
}

func (s *WeaviateStore) classObject() *models.Class {
	searchable := true
	filterable := true
	return &models.Class{
		Class: s.className,
		Properties: []*models.Property{
			{
				Name:            "content",
				DataType:        []string{"text"},
				IndexSearchable: &searchable,
				IndexFilterable: &filterable,
			},
		},
	}
}

// EnsureSchema creates the summary class if it does not exist yet. The
// enumerate-then-create sequence is not atomic across concurrent callers;
// both may attempt creation with the identical definition, so a duplicate
// create is treated as success.
func (s *WeaviateStore) EnsureSchema(ctx context.Context) error {
	schema, err := s.client.Schema().Getter().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema: %v", err)
	}

	for _, class := range schema.Classes {
		if class.Class == s.className {
			return nil
		}
	}

	err = s.client.Schema().ClassCreator().WithClass(s.classObject()).Do(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			log.Printf("Class %s created concurrently, continuing", s.className)
			return nil
		}
		return fmt.Errorf("failed to create class %s: %v", s.className, err)
	}
	return nil
}

// IndexSummary stores one new record. IDs are never reused, so this is
// always an insert.
func (s *WeaviateStore) IndexSummary(ctx context.Context, record types.SearchRecord) error {
	_, err := s.client.Data().Creator().
		WithClassName(s.className).
		WithID(record.ID).
		WithProperties(map[string]interface{}{
			"content": record.Content,
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index summary %s: %v", record.ID, err)
	}
	return nil
}

// Search runs a BM25 free-text query and projects the content field of every
// hit, dropping empty contents and keeping the backend's ranking order.
func (s *WeaviateStore) Search(ctx context.Context, query string) ([]string, error) {
	result, err := s.client.GraphQL().Get().
		WithClassName(s.className).
		WithFields(graphql.Field{Name: "content"}).
		WithBM25(s.client.GraphQL().Bm25ArgBuilder().WithQuery(query)).
		Do(ctx)
	if err != nil {
		return nil, types.NewPipelineError(types.FailureSearchBackend, "search request failed", err)
	}
	if len(result.Errors) > 0 {
		return nil, types.NewPipelineError(types.FailureSearchBackend,
			fmt.Sprintf("search failed: %s", result.Errors[0].Message), nil)
	}

	return projectContents(result.Data, s.className)
}

func projectContents(data map[string]models.JSONObject, className string) ([]string, error) {
	get, ok := data["Get"].(map[string]interface{})
	if !ok {
		return nil, types.NewPipelineError(types.FailureProjection, "unexpected search response shape", nil)
	}
	items, ok := get[className].([]interface{})
	if !ok {
		return nil, types.NewPipelineError(types.FailureProjection,
			fmt.Sprintf("missing %s results in search response", className), nil)
	}

	contents := make([]string, 0, len(items))
	for _, item := range items {
		hit, ok := item.(map[string]interface{})
		if !ok {
			return nil, types.NewPipelineError(types.FailureProjection, "malformed search hit", nil)
		}
		content, ok := hit["content"].(string)
		if !ok && hit["content"] != nil {
			return nil, types.NewPipelineError(types.FailureProjection, "malformed content field", nil)
		}
		if content == "" {
			continue
		}
		contents = append(contents, content)
	}
	return contents, nil
}
