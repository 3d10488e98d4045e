package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/baonguyen204/doc-summarizer-be/config"
	"google.golang.org/api/googleapi"
)

// ReadHandleTTL bounds how long the extraction backend can read an uploaded
// object. Handles are generated once per upload and never persisted.
const ReadHandleTTL = 10 * time.Minute

// StorageService persists raw uploads in a bucket and hands out short-lived
// read-only URLs for them.
type StorageService struct {
	client    *storage.Client
	projectID string
	bucket    string
}

func NewStorageService(ctx context.Context, cfg config.StorageConfig) (*StorageService, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}
	return &StorageService{
		client:    client,
		projectID: cfg.ProjectID,
		bucket:    cfg.Bucket,
	}, nil
}

// Save ensures the bucket exists, then writes data under name, overwriting
// any previous object with that key. Last writer wins.
func (s *StorageService) Save(ctx context.Context, name string, data []byte) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	writer := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", name, err)
	}
	return nil
}

// ReadHandle returns a signed GET URL for the object, valid for ReadHandleTTL.
func (s *StorageService) ReadHandle(ctx context.Context, name string) (string, error) {
	url, err := s.client.Bucket(s.bucket).SignedURL(name, &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(ReadHandleTTL),
		Scheme:  storage.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign read URL for %s: %w", name, err)
	}
	return url, nil
}

func (s *StorageService) ensureBucket(ctx context.Context) error {
	bucket := s.client.Bucket(s.bucket)
	_, err := bucket.Attrs(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}

	if err := bucket.Create(ctx, s.projectID, nil); err != nil {
		// A concurrent creator may win the race; 409 means the bucket is there.
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusConflict {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}
