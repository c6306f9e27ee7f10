package linkly

import "context"

// Provider shortens URLs through a Linkly workspace.
type Provider struct {
	client *Client
}

// NewProvider wraps client.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Shorten creates a named Linkly link and returns its public address.
func (p *Provider) Shorten(ctx context.Context, url, name string) (string, error) {
	link, err := p.client.CreateLink(ctx, CreateLinkRequest{URL: url, Name: name})
	if err != nil {
		return "", err
	}

	return link.Public(), nil
}
