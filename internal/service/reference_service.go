package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shikshaksaathi/saathi_service/internal/client"
	"github.com/shikshaksaathi/saathi_service/internal/errors"
)

// ObjectStore is the blob store holding reference documents. Satisfied by the
// Cloud Storage client.
type ObjectStore interface {
	Upload(ctx context.Context, objectName, contentType string, metadata map[string]string, data []byte) (string, error)
	Download(ctx context.Context, objectName string) ([]byte, error)
	Delete(ctx context.Context, objectName string) error
	Exists(ctx context.Context, objectName string) (bool, error)
	List(ctx context.Context, prefix string) ([]client.ObjectInfo, error)
}

// DocumentCache caches fetched document content. Satisfied by the Redis
// client; nil disables caching.
type DocumentCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ReferenceDocument describes a stored curriculum document in search results.
type ReferenceDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Updated     time.Time `json:"updated"`
	Size        int64     `json:"size"`
}

const cacheKeyPrefix = "refdoc:"

// ReferenceService manages reference documents: upload, search, fetch, and
// explicit delete. Documents are read-only once stored.
type ReferenceService struct {
	store    ObjectStore
	cache    DocumentCache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewReferenceService creates a new reference service. cache may be nil.
func NewReferenceService(store ObjectStore, cache DocumentCache, cacheTTL time.Duration, log zerolog.Logger) *ReferenceService {
	return &ReferenceService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Upload stores a reference document under references/{subject}/{grade}/ and
// returns its generated id and public URL.
func (s *ReferenceService) Upload(ctx context.Context, filename, contentType, subject, grade string, data []byte) (string, string, error) {
	if s.store == nil {
		return "", "", errors.New(errors.ErrStorageService, "storage client not configured")
	}

	if subject == "" {
		subject = "unknown"
	}
	if grade == "" {
		grade = "unknown"
	}

	fileID := uuid.NewString()
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	objectName := fmt.Sprintf("references/%s/%s/%s.%s", subject, grade, fileID, ext)

	metadata := map[string]string{
		"originalName": filename,
		"subject":      subject,
		"grade":        grade,
	}

	fileURL, err := s.store.Upload(ctx, objectName, contentType, metadata, data)
	if err != nil {
		return "", "", errors.Wrap(errors.ErrStorageService, "failed to upload file", err)
	}

	return fileID, fileURL, nil
}

// Search matches document names against the query, case-insensitive.
func (s *ReferenceService) Search(ctx context.Context, query string) ([]ReferenceDocument, error) {
	if s.store == nil {
		return nil, errors.New(errors.ErrStorageService, "storage client not configured")
	}

	objects, err := s.store.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrStorageService, "failed to search documents", err)
	}

	needle := strings.ToLower(query)
	documents := make([]ReferenceDocument, 0)
	for _, obj := range objects {
		if !strings.Contains(strings.ToLower(obj.Name), needle) {
			continue
		}
		documents = append(documents, ReferenceDocument{
			ID:          obj.Name,
			Name:        obj.Name,
			ContentType: obj.ContentType,
			Updated:     obj.Updated,
			Size:        obj.Size,
		})
	}

	return documents, nil
}

// Fetch returns a document's content as UTF-8 text, served from cache when
// possible. Cache writes are best-effort.
func (s *ReferenceService) Fetch(ctx context.Context, documentID string) (string, error) {
	if s.store == nil {
		return "", errors.New(errors.ErrStorageService, "storage client not configured")
	}

	if s.cache != nil {
		if content, ok := s.cache.Get(ctx, cacheKeyPrefix+documentID); ok {
			return content, nil
		}
	}

	exists, err := s.store.Exists(ctx, documentID)
	if err != nil {
		return "", errors.Wrap(errors.ErrStorageService, "failed to fetch document", err)
	}
	if !exists {
		return "", errors.NotFound("document")
	}

	data, err := s.store.Download(ctx, documentID)
	if err != nil {
		return "", errors.Wrap(errors.ErrStorageService, "failed to fetch document", err)
	}

	content := string(data)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyPrefix+documentID, content, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("document_id", documentID).Msg("Failed to cache document")
		}
	}

	return content, nil
}

// Delete removes a document on explicit user request.
func (s *ReferenceService) Delete(ctx context.Context, documentID string) error {
	if s.store == nil {
		return errors.New(errors.ErrStorageService, "storage client not configured")
	}

	if err := s.store.Delete(ctx, documentID); err != nil {
		return errors.Wrap(errors.ErrStorageService, "failed to delete document", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyPrefix+documentID); err != nil {
			s.log.Warn().Err(err).Str("document_id", documentID).Msg("Failed to invalidate document cache")
		}
	}

	return nil
}
