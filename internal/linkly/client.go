// Package linkly is a small client for the Linkly link-shortening API.
package linkly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Linkly API root.
const DefaultBaseURL = "https://app.linklyhq.com/api"

var (
	// ErrRejected means Linkly answered but did not produce a usable link.
	ErrRejected = errors.New("linkly rejected the request")
	// ErrIncompleteCredentials means a key, email or workspace is missing.
	ErrIncompleteCredentials = errors.New("incomplete linkly credentials")
)

// UpstreamError is a non-2xx response from Linkly.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("linkly upstream %d: %s", e.Status, e.Message)
}

// Temporary reports whether retrying later might succeed.
func (e *UpstreamError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status/100 == 5
}

// Credentials identify a Linkly account and workspace.
type Credentials struct {
	APIKey       string `json:"apiKey"`
	AccountEmail string `json:"accountEmail"`
	WorkspaceID  int    `json:"workspaceId"`
}

// Validate checks that every field is present.
func (c Credentials) Validate() error {
	switch {
	case strings.TrimSpace(c.APIKey) == "":
		return fmt.Errorf("%w: api key", ErrIncompleteCredentials)
	case strings.TrimSpace(c.AccountEmail) == "":
		return fmt.Errorf("%w: account email", ErrIncompleteCredentials)
	case c.WorkspaceID <= 0:
		return fmt.Errorf("%w: workspace id", ErrIncompleteCredentials)
	}

	return nil
}

// LinkID accepts both numeric and string ids.
type LinkID string

func (id *LinkID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*id = LinkID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*id = LinkID(n.String())

	return nil
}

// Link is a Linkly short link.
type Link struct {
	ID       LinkID `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name,omitempty"`
	ShortURL string `json:"short_url,omitempty"`
	FullURL  string `json:"full_url,omitempty"`
	Domain   string `json:"domain,omitempty"`
}

// Public returns the address visitors should use.
func (l Link) Public() string {
	if l.FullURL != "" {
		return l.FullURL
	}

	return l.ShortURL
}

// CreateLinkRequest is the subset of link fields this client sends.
type CreateLinkRequest struct {
	URL  string
	Name string
	Note string
}

type createLinkBody struct {
	AccountEmail string `json:"account_email"`
	APIKey       string `json:"api_key"`
	WorkspaceID  int    `json:"workspace_id"`
	URL          string `json:"url"`
	Name         string `json:"name,omitempty"`
	Note         string `json:"note,omitempty"`
}

// createLinkResponse covers both the enveloped and the bare link shapes.
type createLinkResponse struct {
	Link

	Success *bool  `json:"success"`
	Data    *Link  `json:"data"`
	Error   string `json:"error"`
}

type listLinksResponse struct {
	Links []Link `json:"links"`
}

// Client talks to one Linkly workspace.
type Client struct {
	baseURL string
	creds   Credentials
	do      func(*http.Request) (*http.Response, error)
}

// NewClient creates a client. A nil httpClient gets a 30 second timeout.
func NewClient(baseURL string, creds Credentials, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		do:      httpClient.Do,
	}
}

// CreateLink creates a short link for req.URL.
func (c *Client) CreateLink(ctx context.Context, req CreateLinkRequest) (*Link, error) {
	payload, err := json.Marshal(createLinkBody{
		AccountEmail: c.creds.AccountEmail,
		APIKey:       c.creds.APIKey,
		WorkspaceID:  c.creds.WorkspaceID,
		URL:          req.URL,
		Name:         req.Name,
		Note:         req.Note,
	})
	if err != nil {
		return nil, err
	}

	var resp createLinkResponse
	if err := c.call(ctx, http.MethodPost, c.baseURL+"/v1/link", bytes.NewReader(payload), &resp); err != nil {
		return nil, err
	}

	if resp.Success != nil && !*resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "unsuccessful response"
		}

		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	link := resp.Link
	if resp.Data != nil {
		link = *resp.Data
	}

	if link.Public() == "" {
		return nil, fmt.Errorf("%w: response has no short url", ErrRejected)
	}

	return &link, nil
}

// ListLinks returns the workspace's links.
func (c *Client) ListLinks(ctx context.Context) ([]Link, error) {
	q := url.Values{}
	q.Set("api_key", c.creds.APIKey)

	endpoint := fmt.Sprintf("%s/v1/workspace/%s/list_links?%s",
		c.baseURL, strconv.Itoa(c.creds.WorkspaceID), q.Encode())

	var resp listLinksResponse
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Links, nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.do(req)
	if err != nil {
		return fmt.Errorf("linkly %s: %w", method, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("linkly read body: %w", err)
	}

	if res.StatusCode/100 != 2 {
		return &UpstreamError{Status: res.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRejected, err)
	}

	return nil
}
