package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shikshaksaathi/saathi_service/internal/client"
	"github.com/shikshaksaathi/saathi_service/internal/logger"
	"github.com/shikshaksaathi/saathi_service/internal/repository"
	"github.com/shikshaksaathi/saathi_service/internal/service"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

type stubRecognizer struct {
	transcript string
	err        error
}

func (s *stubRecognizer) Recognize(ctx context.Context, audio []byte, mimeType, languageCode string) (string, error) {
	return s.transcript, s.err
}

type stubDownmixer struct{}

func (s *stubDownmixer) DownmixMono(ctx context.Context, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

type stubDetector struct {
	text string
	err  error
}

func (s *stubDetector) DetectText(ctx context.Context, image []byte) (string, error) {
	return s.text, s.err
}

type stubStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{objects: map[string][]byte{}}
}

func (s *stubStore) Upload(ctx context.Context, objectName, contentType string, metadata map[string]string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

func (s *stubStore) Download(ctx context.Context, objectName string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}
	return data, nil
}

func (s *stubStore) Delete(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *stubStore) Exists(ctx context.Context, objectName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectName]
	return ok, nil
}

func (s *stubStore) List(ctx context.Context, prefix string) ([]client.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var infos []client.ObjectInfo
	for name, data := range s.objects {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		infos = append(infos, client.ObjectInfo{Name: name, Size: int64(len(data))})
	}
	return infos, nil
}

func newTestFeedbackService(t *testing.T) (*service.FeedbackService, *repository.InMemoryFeedbackRepository) {
	t.Helper()
	repo := repository.NewInMemoryFeedbackRepository()
	svc := service.NewFeedbackService(repo, nil, logger.NewNop())
	t.Cleanup(svc.Stop)
	return svc, repo
}

// multipartBody builds a multipart request body with one file part and
// optional extra form fields.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return &buf, mw.FormDataContentType()
}

func waitForRecords(t *testing.T, repo *repository.InMemoryFeedbackRepository, want int) []*repository.FeedbackRecord {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		records, err := repo.List(context.Background(), repository.FeedbackFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(records) >= want || time.Now().After(deadline) {
			return records
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readBody(t *testing.T, body io.Reader) []byte {
	t.Helper()
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return data
}
