package handlers

import (
	"time"

	"github.com/serroba/pdf-link-shortener/internal/links"
	"github.com/serroba/pdf-link-shortener/internal/shortening"
)

// DocumentIDRequest addresses a stored document.
type DocumentIDRequest struct {
	ID string `doc:"Document ID returned by the upload" path:"id"`
}

// UploadDocumentRequest carries a raw PDF.
type UploadDocumentRequest struct {
	Filename string `doc:"Original file name" example:"report.pdf" header:"X-Filename"`
	RawBody  []byte `contentType:"application/pdf"`
}

// DocumentBody summarizes a stored document.
type DocumentBody struct {
	ID        string                 `json:"id"`
	Filename  string                 `json:"filename"`
	Info      *links.DocumentInfo    `json:"info"`
	Links     []links.DiscoveredLink `json:"links"`
	Provider  string                 `json:"provider,omitempty"`
	Results   []shortening.Result    `json:"results,omitempty"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// DocumentResponse returns a document summary.
type DocumentResponse struct {
	Body DocumentBody
}

// ShortenDocumentRequest selects the provider for a document's links.
type ShortenDocumentRequest struct {
	ID   string `doc:"Document ID" path:"id"`
	Body *struct {
		Provider string `doc:"Shortening provider; empty uses the default" enum:"linkly,local" example:"linkly" json:"provider,omitempty"`
		Prefix   string `doc:"Link name prefix" example:"PDF Link:" json:"prefix,omitempty"`
	}
}

// GenerateDocumentRequest optionally overrides the stored short links.
type GenerateDocumentRequest struct {
	ID   string `doc:"Document ID" path:"id"`
	Body *struct {
		Replacements []links.Replacement `doc:"Explicit identity to URL replacements" json:"replacements,omitempty"`
	}
}

// GenerateDocumentResponse is the rewritten PDF.
type GenerateDocumentResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	LinksUpdated       string `header:"X-Links-Updated"`
	Body               []byte
}

// ProfileRequest names a credentials profile.
type ProfileRequest struct {
	Profile string `doc:"Credentials profile" example:"default" query:"profile"`
}

// CredentialsBody is the Linkly account used for shortening.
type CredentialsBody struct {
	APIKey       string `doc:"Linkly API key"   json:"apiKey"       minLength:"1"`
	AccountEmail string `doc:"Account email"    json:"accountEmail" minLength:"1"`
	WorkspaceID  int    `doc:"Workspace number" json:"workspaceId"  minimum:"1"`
}

// SaveCredentialsRequest stores credentials under a profile.
type SaveCredentialsRequest struct {
	Profile string `doc:"Credentials profile" example:"default" query:"profile"`
	Body    CredentialsBody
}

// CredentialsResponse shows stored credentials with the key masked.
type CredentialsResponse struct {
	Body struct {
		Profile      string `json:"profile"`
		APIKey       string `doc:"Masked API key" json:"apiKey"`
		AccountEmail string `json:"accountEmail"`
		WorkspaceID  int    `json:"workspaceId"`
	}
}

// ValidateCredentialsRequest checks credentials without storing them.
type ValidateCredentialsRequest struct {
	Body CredentialsBody
}

// ValidateCredentialsResponse reports whether Linkly accepted the credentials.
type ValidateCredentialsResponse struct {
	Body struct {
		Valid bool `json:"valid"`
	}
}

// CreateShortURLRequest is the request body for creating a local short URL.
type CreateShortURLRequest struct {
	Body struct {
		URL      string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url"`
		Strategy string `doc:"Code assignment strategy" enum:"token,hash" example:"hash" json:"strategy,omitempty"`
	}
}

// CreateShortURLResponse is the response for a created short URL.
type CreateShortURLResponse struct {
	Location string `doc:"The short URL location" header:"Location"`
	Body     struct {
		Code        string `doc:"The short code"     example:"abc123"                             json:"code"`
		ShortURL    string `doc:"The full short URL" example:"http://localhost:8888/s/abc123"     json:"shortUrl"`
		OriginalURL string `doc:"The original URL"   example:"https://example.com/very/long/path" json:"originalUrl"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc123" path:"code"`
}

// RedirectResponse sends the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `header:"Location"`
}
