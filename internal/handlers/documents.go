package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/pdf-link-shortener/internal/credentials"
	"github.com/serroba/pdf-link-shortener/internal/documents"
	"github.com/serroba/pdf-link-shortener/internal/links"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
	"go.uber.org/zap"
)

// DocumentService is the document workflow the handler drives.
type DocumentService interface {
	Upload(ctx context.Context, filename string, data []byte) (*documents.Session, error)
	Get(ctx context.Context, id string) (*documents.Session, error)
	Shorten(ctx context.Context, id string, opts documents.ShortenOptions) (*documents.Session, error)
	Generate(ctx context.Context, id string, opts documents.GenerateOptions) (*documents.Generated, error)
	Delete(ctx context.Context, id string) error
}

// DocumentHandler serves the upload, shorten and generate workflow.
type DocumentHandler struct {
	service DocumentService
	logger  *zap.Logger
}

// NewDocumentHandler creates a document handler.
func NewDocumentHandler(service DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, logger: logger}
}

func (h *DocumentHandler) Upload(ctx context.Context, req *UploadDocumentRequest) (*DocumentResponse, error) {
	if len(req.RawBody) == 0 {
		return nil, huma.Error400BadRequest("request body must contain a PDF document")
	}

	filename := req.Filename
	if filename == "" {
		filename = "document.pdf"
	}

	session, err := h.service.Upload(ctx, filename, req.RawBody)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return documentResponse(session), nil
}

func (h *DocumentHandler) Get(ctx context.Context, req *DocumentIDRequest) (*DocumentResponse, error) {
	session, err := h.service.Get(ctx, req.ID)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return documentResponse(session), nil
}

func (h *DocumentHandler) Shorten(ctx context.Context, req *ShortenDocumentRequest) (*DocumentResponse, error) {
	var opts documents.ShortenOptions
	if req.Body != nil {
		opts.Provider = req.Body.Provider
		opts.Prefix = req.Body.Prefix
	}

	session, err := h.service.Shorten(ctx, req.ID, opts)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return nil, huma.Error400BadRequest("linkly credentials are not configured")
		}

		return nil, toHTTPError(h.logger, err)
	}

	return documentResponse(session), nil
}

func (h *DocumentHandler) Generate(ctx context.Context, req *GenerateDocumentRequest) (*GenerateDocumentResponse, error) {
	var opts documents.GenerateOptions
	if req.Body != nil {
		opts.Replacements = req.Body.Replacements
	}

	generated, err := h.service.Generate(ctx, req.ID, opts)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return &GenerateDocumentResponse{
		ContentType:        "application/pdf",
		ContentDisposition: contentDisposition(generated.Filename),
		LinksUpdated:       strconv.Itoa(generated.Updated),
		Body:               generated.Document,
	}, nil
}

func (h *DocumentHandler) Delete(ctx context.Context, req *DocumentIDRequest) (*struct{}, error) {
	if err := h.service.Delete(ctx, req.ID); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return nil, nil
}

func documentResponse(s *documents.Session) *DocumentResponse {
	succeeded, failed := shortening.Summary(s.Results)

	discovered := s.Links()
	if discovered == nil {
		discovered = []links.DiscoveredLink{}
	}

	return &DocumentResponse{Body: DocumentBody{
		ID:        s.ID,
		Filename:  s.Filename,
		Info:      s.Info,
		Links:     discovered,
		Provider:  s.Provider,
		Results:   s.Results,
		Succeeded: succeeded,
		Failed:    failed,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}}
}

func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}

	return fmt.Sprintf("attachment; filename=%q", filename)
}
