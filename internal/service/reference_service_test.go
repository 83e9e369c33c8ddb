package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/shikshaksaathi/saathi_service/internal/errors"
	"github.com/shikshaksaathi/saathi_service/internal/client"
	"github.com/shikshaksaathi/saathi_service/internal/logger"
)

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	listErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) Upload(ctx context.Context, objectName, contentType string, metadata map[string]string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

func (f *fakeObjectStore) Download(ctx context.Context, objectName string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}
	return data, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	return nil
}

func (f *fakeObjectStore) Exists(ctx context.Context, objectName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[objectName]
	return ok, nil
}

func (f *fakeObjectStore) List(ctx context.Context, prefix string) ([]client.ObjectInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var infos []client.ObjectInfo
	for name, data := range f.objects {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		infos = append(infos, client.ObjectInfo{
			Name: name,
			Size: int64(len(data)),
		})
	}
	return infos, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	gets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	val, ok := f.entries[key]
	if ok {
		f.hits++
	}
	return val, ok
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func TestUploadNamesObjectBySubjectAndGrade(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewReferenceService(store, nil, time.Minute, logger.NewNop())

	fileID, fileURL, err := svc.Upload(context.Background(), "ncert-math.pdf", "application/pdf", "mathematics", "4", []byte("pdf data"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if fileID == "" {
		t.Errorf("empty file id")
	}

	wantPrefix := "https://storage.googleapis.com/test-bucket/references/mathematics/4/"
	if !strings.HasPrefix(fileURL, wantPrefix) {
		t.Errorf("url = %q, want prefix %q", fileURL, wantPrefix)
	}
	if !strings.HasSuffix(fileURL, ".pdf") {
		t.Errorf("url = %q, want .pdf extension preserved", fileURL)
	}
}

func TestUploadDefaultsUnknownSubjectAndGrade(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewReferenceService(store, nil, time.Minute, logger.NewNop())

	_, fileURL, err := svc.Upload(context.Background(), "doc.txt", "text/plain", "", "", []byte("data"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.Contains(fileURL, "references/unknown/unknown/") {
		t.Errorf("url = %q, want unknown/unknown path", fileURL)
	}
}

func TestUploadWithoutStoreConfigured(t *testing.T) {
	svc := NewReferenceService(nil, nil, time.Minute, logger.NewNop())

	_, _, err := svc.Upload(context.Background(), "doc.txt", "text/plain", "", "", []byte("data"))
	if err == nil {
		t.Fatal("expected error with no store")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrStorageService {
		t.Errorf("got %v, want ErrStorageService", err)
	}
}

func TestSearchMatchesCaseInsensitive(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["references/mathematics/4/Fractions-Guide.pdf"] = []byte("a")
	store.objects["references/science/6/photosynthesis.pdf"] = []byte("b")
	svc := NewReferenceService(store, nil, time.Minute, logger.NewNop())

	docs, err := svc.Search(context.Background(), "FRACTIONS")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Name != "references/mathematics/4/Fractions-Guide.pdf" {
		t.Errorf("name = %q", docs[0].Name)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["a.pdf"] = []byte("a")
	store.objects["b.pdf"] = []byte("b")
	svc := NewReferenceService(store, nil, time.Minute, logger.NewNop())

	docs, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}

func TestFetchUsesCacheOnSecondRead(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["references/science/6/doc.txt"] = []byte("chapter text")
	cache := newFakeCache()
	svc := NewReferenceService(store, cache, time.Minute, logger.NewNop())

	first, err := svc.Fetch(context.Background(), "references/science/6/doc.txt")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if first != "chapter text" {
		t.Errorf("content = %q", first)
	}

	second, err := svc.Fetch(context.Background(), "references/science/6/doc.txt")
	if err != nil {
		t.Fatalf("Fetch (cached): %v", err)
	}
	if second != first {
		t.Errorf("cached content differs: %q vs %q", second, first)
	}
	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
}

func TestFetchMissingDocument(t *testing.T) {
	svc := NewReferenceService(newFakeObjectStore(), nil, time.Minute, logger.NewNop())

	_, err := svc.Fetch(context.Background(), "references/none.txt")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if appErr.HTTPStatus() != 404 {
		t.Errorf("status = %d, want 404", appErr.HTTPStatus())
	}
}

func TestDeleteInvalidatesCache(t *testing.T) {
	store := newFakeObjectStore()
	store.objects["doc.txt"] = []byte("text")
	cache := newFakeCache()
	svc := NewReferenceService(store, cache, time.Minute, logger.NewNop())

	if _, err := svc.Fetch(context.Background(), "doc.txt"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := svc.Delete(context.Background(), "doc.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, ok := cache.entries["refdoc:doc.txt"]; ok {
		t.Errorf("cache entry survived delete")
	}
	if exists, _ := store.Exists(context.Background(), "doc.txt"); exists {
		t.Errorf("object survived delete")
	}
}
