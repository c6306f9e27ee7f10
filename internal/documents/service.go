package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/pdf-link-shortener/internal/analytics"
	"github.com/serroba/pdf-link-shortener/internal/links"
	"github.com/serroba/pdf-link-shortener/internal/requestmeta"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
	"go.uber.org/zap"
)

// ProviderResolver looks up a shortening provider by name.
type ProviderResolver interface {
	Name(name string) string
	Resolve(ctx context.Context, name string) (shortening.Provider, error)
}

// Config tunes a Service.
type Config struct {
	// MaxBytes rejects larger uploads. Zero means unlimited.
	MaxBytes int64
	// Delay is the pause between provider calls.
	Delay time.Duration
	// Prefix names short links when ShortenOptions.Prefix is empty.
	Prefix string
}

// ShortenOptions selects the provider and link name prefix.
type ShortenOptions struct {
	Provider string
	Prefix   string
}

// GenerateOptions overrides the replacements derived from shortening results.
type GenerateOptions struct {
	Replacements []links.Replacement
}

// Generated is a rewritten document ready for download.
type Generated struct {
	Filename string
	Document []byte
	Updated  int
}

// Service runs the upload, shorten and generate workflow.
type Service struct {
	store      Store
	providers  ProviderResolver
	publishers *analytics.Publishers
	config     Config
	logger     *zap.Logger
	newID      func() string
	now        func() time.Time
}

// NewService creates a document service.
func NewService(
	store Store,
	providers ProviderResolver,
	publishers *analytics.Publishers,
	config Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:      store,
		providers:  providers,
		publishers: publishers,
		config:     config,
		logger:     logger,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// Upload inspects data and stores it as a new session.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (*Session, error) {
	if s.config.MaxBytes > 0 && int64(len(data)) > s.config.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(data), s.config.MaxBytes)
	}

	info, err := links.Inspect(data)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &Session{
		ID:        s.newID(),
		Filename:  filename,
		Document:  data,
		Info:      info,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("document processed",
		zap.String("documentId", session.ID),
		zap.Int("pageCount", info.PageCount),
		zap.Int("links", len(info.Links)),
	)

	meta := requestmeta.FromContext(ctx)
	s.publish("document processed", session.ID, s.publishers.DocumentProcessed(&analytics.DocumentProcessedEvent{
		DocumentID:  session.ID,
		Filename:    filename,
		Size:        len(data),
		PageCount:   info.PageCount,
		LinkCount:   len(info.Links),
		ProcessedAt: now,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}))

	return session, nil
}

// Get returns a stored session.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Shorten runs every discovered link through the chosen provider and stores
// the results on the session, replacing any earlier run.
func (s *Service) Shorten(ctx context.Context, id string, opts ShortenOptions) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := s.providers.Name(opts.Provider)

	provider, err := s.providers.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = s.config.Prefix
	}

	results := shortening.NewBatch(provider, s.config.Delay, s.logger).Run(ctx, session.Links(), prefix)
	succeeded, failed := shortening.Summary(results)

	session.Provider = name
	session.Results = results
	session.UpdatedAt = s.now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("links shortened",
		zap.String("documentId", id),
		zap.String("provider", name),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
	)

	s.publish("links shortened", id, s.publishers.LinksShortened(&analytics.LinksShortenedEvent{
		DocumentID:  id,
		Provider:    name,
		Succeeded:   succeeded,
		Failed:      failed,
		ShortenedAt: session.UpdatedAt,
	}))

	return session, nil
}

// Generate rewrites the stored document with the session's successful short
// links, or with opts.Replacements when given. It returns
// links.ErrNoLinksUpdated when nothing matched.
func (s *Service) Generate(ctx context.Context, id string, opts GenerateOptions) (*Generated, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	replacements := opts.Replacements
	if len(replacements) == 0 {
		replacements = shortening.Replacements(session.Results)
	}

	result, err := links.Rewrite(session.Document, replacements)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document generated",
		zap.String("documentId", id),
		zap.Int("updated", result.Updated),
		zap.Int("size", len(result.Document)),
	)

	s.publish("document generated", id, s.publishers.DocumentGenerated(&analytics.DocumentGeneratedEvent{
		DocumentID:   id,
		LinksUpdated: result.Updated,
		Size:         len(result.Document),
		GeneratedAt:  s.now().UTC(),
	}))

	return &Generated{
		Filename: session.OutputFilename(),
		Document: result.Document,
		Updated:  result.Updated,
	}, nil
}

// Delete removes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) publish(event, id string, err error) {
	if err != nil {
		s.logger.Error("failed to publish analytics event",
			zap.String("event", event),
			zap.String("documentId", id),
			zap.Error(err),
		)
	}
}
