package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/pdf-link-shortener/internal/analytics"
	"github.com/serroba/pdf-link-shortener/internal/requestmeta"
	"github.com/serroba/pdf-link-shortener/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler serves the built-in shortener.
type URLHandler struct {
	strategies      map[shortener.StrategyName]shortener.Strategy
	store           shortener.Repository
	baseURL         string
	defaultStrategy shortener.StrategyName
	publishers      *analytics.Publishers
	logger          *zap.Logger
}

// NewURLHandler creates a URL handler with injected strategies.
func NewURLHandler(
	store shortener.Repository,
	baseURL string,
	strategies map[shortener.StrategyName]shortener.Strategy,
	publishers *analytics.Publishers,
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		strategies:      strategies,
		store:           store,
		baseURL:         baseURL,
		defaultStrategy: shortener.StrategyToken,
		publishers:      publishers,
		logger:          logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	strategyName := shortener.StrategyName(req.Body.Strategy)
	if strategyName == "" {
		strategyName = h.defaultStrategy
	}

	strategy, ok := h.strategies[strategyName]
	if !ok {
		return nil, huma.Error400BadRequest("invalid strategy: must be 'token' or 'hash'")
	}

	shortURL, err := strategy.Shorten(ctx, req.Body.URL)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	meta := requestmeta.FromContext(ctx)
	event := &analytics.URLCreatedEvent{
		Code:        string(shortURL.Code),
		OriginalURL: shortURL.OriginalURL,
		URLHash:     string(shortURL.URLHash),
		Strategy:    string(strategyName),
		CreatedAt:   shortURL.CreatedAt,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishers.URLCreated(event); err != nil {
		h.logger.Error("failed to publish analytics event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	link := shortener.PublicURL(h.baseURL, shortURL.Code)

	resp := &CreateShortURLResponse{}
	resp.Location = link
	resp.Body.Code = string(shortURL.Code)
	resp.Body.ShortURL = link
	resp.Body.OriginalURL = shortURL.OriginalURL

	return resp, nil
}

func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	shortURL, err := h.store.GetByCode(ctx, shortener.Code(req.Code))
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	meta := requestmeta.FromContext(ctx)
	event := &analytics.URLAccessedEvent{
		Code:       req.Code,
		AccessedAt: time.Now().UTC(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if err = h.publishers.URLAccessed(event); err != nil {
		h.logger.Error("failed to publish access event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{Status: http.StatusMovedPermanently}
	resp.Location = shortURL.OriginalURL

	return resp, nil
}
