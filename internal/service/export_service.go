package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shikshaksaathi/saathi_service/internal/document"
	"github.com/shikshaksaathi/saathi_service/internal/errors"
)

// PDFUploader hosts exported documents. Satisfied by the Cloudflare R2
// client; nil keeps exports inline.
type PDFUploader interface {
	UploadR2Object(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ExportResult is the outcome of one export. URL is set only when an
// uploader is configured; otherwise Data carries the document inline.
type ExportResult struct {
	Filename string
	Data     []byte
	URL      string
}

// ExportService renders generated feedback text to PDF and optionally hosts
// the result.
type ExportService struct {
	uploader PDFUploader
}

// NewExportService creates a new export service. uploader may be nil.
func NewExportService(uploader PDFUploader) *ExportService {
	return &ExportService{uploader: uploader}
}

// Export renders content to a PDF document.
func (s *ExportService) Export(ctx context.Context, content, filename string) (*ExportResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.Validation("content is required")
	}

	filename = sanitizeFilename(filename)

	data, err := document.PDFBytes(content, strings.TrimSuffix(filename, ".pdf"))
	if err != nil {
		return nil, errors.InternalWrap("failed to generate PDF", err)
	}

	result := &ExportResult{
		Filename: filename,
		Data:     data,
	}

	if s.uploader != nil {
		key := fmt.Sprintf("exports/%s-%s", uuid.NewString(), filename)
		url, err := s.uploader.UploadR2Object(ctx, key, data, "application/pdf")
		if err != nil {
			return nil, errors.Wrap(errors.ErrStorageService, "failed to upload PDF", err)
		}
		result.URL = url
	}

	return result, nil
}

func sanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = "feedback"
	}
	filename = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"', '\'':
			return '-'
		}
		return r
	}, filename)
	if !strings.HasSuffix(filename, ".pdf") {
		filename += ".pdf"
	}
	return filename
}
