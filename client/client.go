package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chibuka/so-importer/internal/params"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the Stack Exchange API root
const DefaultBaseURL = "https://api.stackexchange.com"

// DefaultVersion is the API version methods are called on
const DefaultVersion = "2.3"

var (
	ErrMissingMethod = errors.New("a method name must be provided")
	ErrMissingParams = errors.New("a non-empty parameters set must be provided")
)

// Client issues read queries against the Stack Exchange API.
type Client struct {
	BaseURL    string
	Version    string
	HTTPClient *http.Client

	log    zerolog.Logger
	site   string
	params *params.Normalizer
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.Version = version
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithSite changes the site every query targets.
func WithSite(site string) Option {
	return func(c *Client) {
		c.site = site
	}
}

func New(log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		Version:    DefaultVersion,
		HTTPClient: http.DefaultClient,
		log:        log.With().Str("component", "client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.params = params.New(log, params.WithSite(c.site))
	return c
}

// Query calls GET {base}/{version}/{method} with p, adding key and
// accessToken when they are set, and returns the decoded JSON body as is.
// p is not modified.
func (c *Client) Query(ctx context.Context, method, key, accessToken string, p *params.Values) (map[string]any, error) {
	if method == "" {
		c.log.Error().Err(ErrMissingMethod).Msg("query rejected")
		return nil, ErrMissingMethod
	}
	if p.Len() == 0 {
		c.log.Error().Err(ErrMissingParams).Str("method", method).Msg("query rejected")
		return nil, ErrMissingParams
	}

	q := p.Clone()
	if key != "" {
		q.Set("key", key)
	}
	if accessToken != "" {
		q.Set("access_token", accessToken)
	}

	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.BaseURL, c.Version, method, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("method", method).Str("query", p.Encode()).Msg("api request")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Int("status", res.StatusCode).
		Int("bytes", len(body)).
		Msg("api response")

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response (HTTP %d): %w", method, res.StatusCode, err)
	}
	return out, nil
}

// GetQuestions validates p and queries the questions method.
func (c *Client) GetQuestions(ctx context.Context, key, accessToken string, p params.QuestionsParams) (map[string]any, error) {
	values, err := c.params.BuildQuestions(p)
	if err != nil {
		return nil, err
	}
	return c.Query(ctx, "questions", key, accessToken, values)
}
