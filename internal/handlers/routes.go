package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/pdf-link-shortener/internal/ratelimit"
)

// RouteConfig tunes route registration.
type RouteConfig struct {
	// MaxDocumentBytes caps the upload body. Zero keeps huma's default.
	MaxDocumentBytes int64
}

func limited(scope ratelimit.Scope) map[string]any {
	return map[string]any{ratelimit.MetadataKey: ratelimit.EndpointConfig{Scope: scope}}
}

// RegisterDocumentRoutes registers the PDF workflow.
func RegisterDocumentRoutes(api huma.API, h *DocumentHandler, cfg RouteConfig) {
	huma.Register(api, huma.Operation{
		OperationID:  "upload-document",
		Method:       http.MethodPost,
		Path:         "/documents",
		Summary:      "Upload a PDF",
		Description:  "Stores the PDF and lists its external hyperlinks.",
		Tags:         []string{"Documents"},
		MaxBodyBytes: cfg.MaxDocumentBytes,
		Metadata:     limited(ratelimit.ScopeUpload),
	}, h.Upload)

	huma.Register(api, huma.Operation{
		OperationID: "get-document",
		Method:      http.MethodGet,
		Path:        "/documents/{id}",
		Summary:     "Get a document",
		Tags:        []string{"Documents"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "shorten-document-links",
		Method:      http.MethodPost,
		Path:        "/documents/{id}/shorten",
		Summary:     "Shorten document links",
		Description: "Creates a short link for every discovered link with the chosen provider.",
		Tags:        []string{"Documents"},
		Metadata:    limited(ratelimit.ScopeShorten),
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "generate-document",
		Method:      http.MethodPost,
		Path:        "/documents/{id}/generate",
		Summary:     "Download the rewritten PDF",
		Description: "Rewrites every shortened link annotation and returns the new PDF.",
		Tags:        []string{"Documents"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Rewritten PDF",
				Content:     map[string]*huma.MediaType{"application/pdf": {}},
			},
		},
	}, h.Generate)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-document",
		Method:        http.MethodDelete,
		Path:          "/documents/{id}",
		Summary:       "Delete a document",
		Tags:          []string{"Documents"},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)
}

// RegisterCredentialRoutes registers Linkly credential management.
func RegisterCredentialRoutes(api huma.API, h *CredentialHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "save-credentials",
		Method:      http.MethodPut,
		Path:        "/credentials",
		Summary:     "Store Linkly credentials",
		Tags:        []string{"Credentials"},
	}, h.Save)

	huma.Register(api, huma.Operation{
		OperationID: "get-credentials",
		Method:      http.MethodGet,
		Path:        "/credentials",
		Summary:     "Show stored Linkly credentials",
		Tags:        []string{"Credentials"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-credentials",
		Method:        http.MethodDelete,
		Path:          "/credentials",
		Summary:       "Remove stored Linkly credentials",
		Tags:          []string{"Credentials"},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "validate-credentials",
		Method:      http.MethodPost,
		Path:        "/credentials/validate",
		Summary:     "Check credentials against Linkly",
		Tags:        []string{"Credentials"},
		Metadata:    limited(ratelimit.ScopeShorten),
	}, h.Validate)
}

// RegisterURLRoutes registers the built-in shortener.
func RegisterURLRoutes(api huma.API, h *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-short-url",
		Method:      http.MethodPost,
		Path:        "/shorten",
		Summary:     "Create short URL",
		Description: "Creates a shortened URL using the specified strategy (token or hash).",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, h.CreateShortURL)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/s/{code}",
		Summary:     "Redirect to original URL",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{{Window: time.Minute, Max: 1000}},
			},
		},
	}, h.RedirectToURL)
}
