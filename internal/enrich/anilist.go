// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package enrich

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/animerec/internal/metrics"
)

// DefaultEndpoint is the public AniList GraphQL API.
const DefaultEndpoint = "https://graphql.anilist.co"

const mediaQuery = `query ($search: String) { Media (search: $search, type: ANIME) { title { romaji } coverImage { large } siteUrl } }`

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 1 << 20

// Ensure AniListClient implements Gateway
var _ Gateway = (*AniListClient)(nil)

// AniListClient fetches title metadata from the AniList GraphQL API.
type AniListClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter // nil disables pacing
}

// ClientOption configures an AniListClient.
type ClientOption func(*AniListClient)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *AniListClient) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *AniListClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *AniListClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *AniListClient) {
		c.userAgent = ua
	}
}

// WithRateLimit paces outbound requests. rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *AniListClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// NewAniListClient creates a client with a 10s timeout and no pacing unless
// options say otherwise.
func NewAniListClient(opts ...ClientOption) *AniListClient {
	c := &AniListClient{
		endpoint:   DefaultEndpoint,
		userAgent:  "animerec/1.0",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		Media *mediaRecord `json:"Media"`
	} `json:"data"`
}

type mediaRecord struct {
	Title *struct {
		Romaji string `json:"romaji"`
	} `json:"title"`
	CoverImage *struct {
		Large string `json:"large"`
	} `json:"coverImage"`
	SiteURL string `json:"siteUrl"`
}

// Fetch looks up name on AniList. A 404 or a null Media is ErrNotFound;
// a record missing its title, image or link is ErrIncompleteRecord.
func (c *AniListClient) Fetch(ctx context.Context, name string) (*Metadata, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNotFound
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("anilist rate limiter: %w", err)
		}
	}

	start := time.Now()
	md, err := c.fetch(ctx, name)
	metrics.RecordEnrichmentRequest(resultLabel(err), time.Since(start))
	return md, err
}

func (c *AniListClient) fetch(ctx context.Context, name string) (*Metadata, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     mediaQuery,
		Variables: map[string]any{"search": name},
	})
	if err != nil {
		return nil, fmt.Errorf("encode anilist query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create anilist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anilist request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read anilist response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	m := decoded.Data.Media
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if m.Title == nil || m.Title.Romaji == "" || m.CoverImage == nil || m.CoverImage.Large == "" || m.SiteURL == "" {
		return nil, fmt.Errorf("%w: %q", ErrIncompleteRecord, name)
	}

	return &Metadata{
		Title:    m.Title.Romaji,
		ImageURL: m.CoverImage.Large,
		Link:     m.SiteURL,
	}, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsMiss(err):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
