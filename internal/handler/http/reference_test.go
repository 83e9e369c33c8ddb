package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shikshaksaathi/saathi_service/internal/logger"
	"github.com/shikshaksaathi/saathi_service/internal/service"
)

func newTestReferenceHandler(t *testing.T, store *stubStore) *ReferenceHandler {
	t.Helper()
	reference := service.NewReferenceService(store, nil, time.Minute, logger.NewNop())
	return NewReferenceHandler(logger.NewNop(), reference)
}

func TestUploadReferenceEndpoint(t *testing.T) {
	store := newStubStore()
	handler := newTestReferenceHandler(t, store)

	body, contentType := multipartBody(t, "file", "ncert-math.pdf", "application/pdf", []byte("pdf data"), map[string]string{
		"subject": "mathematics",
		"grade":   "4",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-reference", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		FileID  string `json:"fileId"`
		FileURL string `json:"fileUrl"`
		Success bool   `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.FileID == "" {
		t.Errorf("response = %+v", resp)
	}
	if !strings.Contains(resp.FileURL, "references/mathematics/4/") {
		t.Errorf("fileUrl = %q", resp.FileURL)
	}
	if len(store.objects) != 1 {
		t.Errorf("stored %d objects, want 1", len(store.objects))
	}
}

func TestUploadReferenceEndpointMissingFile(t *testing.T) {
	handler := newTestReferenceHandler(t, newStubStore())

	body, contentType := multipartBody(t, "wrong-field", "doc.pdf", "application/pdf", []byte("data"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload-reference", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSearchDocumentsEndpoint(t *testing.T) {
	store := newStubStore()
	store.objects["references/mathematics/4/fractions.pdf"] = []byte("a")
	store.objects["references/science/6/plants.pdf"] = []byte("b")
	handler := newTestReferenceHandler(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/search-documents", strings.NewReader(`{"query":"fractions"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Documents []service.ReferenceDocument `json:"documents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Documents) != 1 {
		t.Fatalf("got %d documents, want 1", len(resp.Documents))
	}
	if resp.Documents[0].Name != "references/mathematics/4/fractions.pdf" {
		t.Errorf("name = %q", resp.Documents[0].Name)
	}
}

func TestFetchDocumentEndpoint(t *testing.T) {
	store := newStubStore()
	store.objects["references/science/6/plants.txt"] = []byte("chapter text")
	handler := newTestReferenceHandler(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/fetch-document", strings.NewReader(`{"documentId":"references/science/6/plants.txt"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Fetch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Content != "chapter text" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestFetchDocumentEndpointNotFound(t *testing.T) {
	handler := newTestReferenceHandler(t, newStubStore())

	req := httptest.NewRequest(http.MethodPost, "/api/fetch-document", strings.NewReader(`{"documentId":"references/none.txt"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Fetch(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestFetchDocumentEndpointRequiresID(t *testing.T) {
	handler := newTestReferenceHandler(t, newStubStore())

	req := httptest.NewRequest(http.MethodPost, "/api/fetch-document", strings.NewReader(`{"documentId":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Fetch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteReferenceEndpoint(t *testing.T) {
	store := newStubStore()
	store.objects["references/mathematics/4/doc.pdf"] = []byte("data")
	handler := newTestReferenceHandler(t, store)

	// The object name contains slashes, so the route matches a wildcard.
	r := chi.NewRouter()
	r.Delete("/api/reference/*", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/reference/references/mathematics/4/doc.pdf", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if exists, _ := store.Exists(context.Background(), "references/mathematics/4/doc.pdf"); exists {
		t.Errorf("object survived delete")
	}
}
