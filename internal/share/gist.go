// Package share uploads scratch content to the GitHub gist API.
package share

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pkt.systems/pslog"
)

// DefaultFilename names the uploaded file inside the gist.
const DefaultFilename = "scratch.rs"

// Client posts gists. The zero value is not usable; construct with New.
type Client struct {
	apiURL      string
	filename    string
	description string
	httpClient  *http.Client
	log         pslog.Logger
}

// Option adjusts a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) { g.httpClient = c }
}

// WithFilename sets the filename used inside the gist.
func WithFilename(name string) Option {
	return func(g *Client) { g.filename = name }
}

// WithLogger sets the client logger.
func WithLogger(log pslog.Logger) Option {
	return func(g *Client) { g.log = log }
}

// New constructs a gist client against the given API endpoint.
func New(apiURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiURL) == "" {
		return nil, errors.New("gist api url is required")
	}
	c := &Client{
		apiURL:      apiURL,
		filename:    DefaultFilename,
		description: "Shared from scratchdock",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = pslog.Ctx(context.Background())
	}
	return c, nil
}

type gistFile struct {
	Content string `json:"content"`
}

type gistRequest struct {
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Files       map[string]gistFile `json:"files"`
}

type gistResponse struct {
	HTMLURL string `json:"html_url"`
}

// Share uploads content as a secret gist using the given access token.
func (c *Client) Share(ctx context.Context, content, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return errors.New("access token is required")
	}
	body, err := json.Marshal(gistRequest{
		Description: c.description,
		Public:      false,
		Files: map[string]gistFile{
			c.filename: {Content: content},
		},
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "token "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("gist create failed", "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("gist create rejected", "status", resp.StatusCode)
		return fmt.Errorf("gist api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var created gistResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("decode gist response: %w", err)
	}
	c.log.Info("gist created", "url", created.HTMLURL)
	return nil
}
