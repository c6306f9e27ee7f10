package handlers

import (
	"context"

	"github.com/serroba/pdf-link-shortener/internal/credentials"
	"github.com/serroba/pdf-link-shortener/internal/linkly"
	"go.uber.org/zap"
)

// CredentialService manages stored Linkly credentials.
type CredentialService interface {
	Save(ctx context.Context, profile string, creds linkly.Credentials) error
	Get(ctx context.Context, profile string) (*linkly.Credentials, error)
	Delete(ctx context.Context, profile string) error
	Validate(ctx context.Context, creds linkly.Credentials) bool
}

// CredentialHandler serves the credentials endpoints.
type CredentialHandler struct {
	service CredentialService
	logger  *zap.Logger
}

// NewCredentialHandler creates a credentials handler.
func NewCredentialHandler(service CredentialService, logger *zap.Logger) *CredentialHandler {
	return &CredentialHandler{service: service, logger: logger}
}

func (h *CredentialHandler) Save(ctx context.Context, req *SaveCredentialsRequest) (*CredentialsResponse, error) {
	creds := req.Body.credentials()

	if err := h.service.Save(ctx, req.Profile, creds); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return h.show(ctx, req.Profile)
}

func (h *CredentialHandler) Get(ctx context.Context, req *ProfileRequest) (*CredentialsResponse, error) {
	return h.show(ctx, req.Profile)
}

func (h *CredentialHandler) Delete(ctx context.Context, req *ProfileRequest) (*struct{}, error) {
	if err := h.service.Delete(ctx, req.Profile); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return nil, nil
}

func (h *CredentialHandler) Validate(
	ctx context.Context,
	req *ValidateCredentialsRequest,
) (*ValidateCredentialsResponse, error) {
	resp := &ValidateCredentialsResponse{}
	resp.Body.Valid = h.service.Validate(ctx, req.Body.credentials())

	return resp, nil
}

func (h *CredentialHandler) show(ctx context.Context, profile string) (*CredentialsResponse, error) {
	creds, err := h.service.Get(ctx, profile)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	if profile == "" {
		profile = credentials.DefaultProfile
	}

	resp := &CredentialsResponse{}
	resp.Body.Profile = profile
	resp.Body.APIKey = credentials.MaskKey(creds.APIKey)
	resp.Body.AccountEmail = creds.AccountEmail
	resp.Body.WorkspaceID = creds.WorkspaceID

	return resp, nil
}

func (b CredentialsBody) credentials() linkly.Credentials {
	return linkly.Credentials{APIKey: b.APIKey, AccountEmail: b.AccountEmail, WorkspaceID: b.WorkspaceID}
}
