// Package credentials stores Linkly credentials by profile and checks them
// against the Linkly API.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/serroba/pdf-link-shortener/internal/linkly"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
	"go.uber.org/zap"
)

// DefaultProfile is used when no profile is named.
const DefaultProfile = "default"

// ErrNotFound is returned when a profile has no stored credentials.
var ErrNotFound = errors.New("credentials not found")

// Store persists credentials per profile.
type Store interface {
	Save(ctx context.Context, profile string, creds linkly.Credentials) error
	Get(ctx context.Context, profile string) (*linkly.Credentials, error)
	Delete(ctx context.Context, profile string) error
}

// Service manages stored credentials.
type Service struct {
	store      Store
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewService creates a credentials service talking to Linkly at baseURL.
func NewService(store Store, baseURL string, httpClient *http.Client, logger *zap.Logger) *Service {
	return &Service{store: store, baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// Save stores complete credentials under profile.
func (s *Service) Save(ctx context.Context, profile string, creds linkly.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.AccountEmail = strings.TrimSpace(creds.AccountEmail)

	return s.store.Save(ctx, profileOrDefault(profile), creds)
}

// Get returns the credentials stored under profile.
func (s *Service) Get(ctx context.Context, profile string) (*linkly.Credentials, error) {
	return s.store.Get(ctx, profileOrDefault(profile))
}

// Delete removes the credentials stored under profile.
func (s *Service) Delete(ctx context.Context, profile string) error {
	return s.store.Delete(ctx, profileOrDefault(profile))
}

// Validate reports whether creds are complete and accepted by Linkly.
func (s *Service) Validate(ctx context.Context, creds linkly.Credentials) bool {
	if err := creds.Validate(); err != nil {
		return false
	}

	if _, err := s.client(creds).ListLinks(ctx); err != nil {
		s.logger.Info("linkly credentials rejected",
			zap.Int("workspaceId", creds.WorkspaceID),
			zap.Error(err),
		)

		return false
	}

	return true
}

// Provider builds a Linkly provider from the credentials stored under profile.
func (s *Service) Provider(ctx context.Context, profile string) (shortening.Provider, error) {
	creds, err := s.Get(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("linkly provider: %w", err)
	}

	return linkly.NewProvider(s.client(*creds)), nil
}

func (s *Service) client(creds linkly.Credentials) *linkly.Client {
	return linkly.NewClient(s.baseURL, creds, s.httpClient)
}

// MaskKey hides all but the last four characters of key.
func MaskKey(key string) string {
	const visible = 4

	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}

func profileOrDefault(profile string) string {
	if profile == "" {
		return DefaultProfile
	}

	return profile
}
