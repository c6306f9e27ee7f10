package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/pdf-link-shortener/internal/credentials"
	"github.com/serroba/pdf-link-shortener/internal/documents"
	"github.com/serroba/pdf-link-shortener/internal/linkly"
	"github.com/serroba/pdf-link-shortener/internal/links"
	"github.com/serroba/pdf-link-shortener/internal/pdfgraph"
	"github.com/serroba/pdf-link-shortener/internal/shortener"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
	"go.uber.org/zap"
)

// toHTTPError maps domain errors to huma status errors. Anything unknown is
// logged and reported as a bare 500.
func toHTTPError(logger *zap.Logger, err error) error {
	var upstream *linkly.UpstreamError

	switch {
	case errors.Is(err, documents.ErrNotFound),
		errors.Is(err, shortener.ErrNotFound),
		errors.Is(err, credentials.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, links.ErrNoLinksUpdated):
		return huma.Error422UnprocessableEntity("no links were updated")
	case errors.Is(err, pdfgraph.ErrUnreadable),
		errors.Is(err, pdfgraph.ErrEncrypted):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, documents.ErrTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, shortening.ErrUnknownProvider),
		errors.Is(err, linkly.ErrIncompleteCredentials),
		errors.Is(err, shortener.ErrInvalidURL):
		return huma.Error400BadRequest(err.Error())
	case errors.As(err, &upstream),
		errors.Is(err, linkly.ErrRejected):
		return huma.Error502BadGateway(err.Error())
	default:
		logger.Error("request failed", zap.Error(err))

		return huma.Error500InternalServerError("internal server error")
	}
}
