// Package jikan wraps the Jikan v4 REST API, the unofficial MyAnimeList
// interface used as the remote catalog source.
package jikan

import (
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

const (
	defaultBaseURL     = "https://api.jikan.moe/v4"
	defaultHTTPTimeout = 30 * time.Second
)

// Config describes the Jikan client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client wraps the Jikan REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("jikan: parse base url: %w", err)
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: baseURL, http: client}, nil
}

// Named is the {mal_id, name} shape Jikan uses for studios and genres.
type Named struct {
	MalID int64  `json:"mal_id"`
	Name  string `json:"name"`
}

// Anime is one title as the Jikan API returns it.
type Anime struct {
	MalID         int64  `json:"mal_id"`
	Title         string `json:"title"`
	TitleJapanese string `json:"title_japanese"`
	Type          string `json:"type"`
	Episodes      int    `json:"episodes"`
	Year          int    `json:"year"`
	Synopsis      string `json:"synopsis"`
	Images        struct {
		JPG struct {
			ImageURL string `json:"image_url"`
		} `json:"jpg"`
	} `json:"images"`
	Studios []Named `json:"studios"`
	Genres  []Named `json:"genres"`
}

// TopRequest describes a /top/anime listing. Filter and Type follow the
// Jikan parameter vocabulary (bypopularity, favorite, airing, upcoming;
// tv, movie, ova, ona, special).
type TopRequest struct {
	Page   int
	Limit  int
	Filter string
	Type   string
}

// TopAnime fetches one page of the top-anime listing.
func (c *Client) TopAnime(ctx context.Context, req TopRequest) ([]Anime, error) {
	if c == nil {
		return nil, errors.New("jikan: client is nil")
	}
	params := url.Values{}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Filter != "" {
		params.Set("filter", req.Filter)
	}
	if req.Type != "" {
		params.Set("type", req.Type)
	}
	return c.list(ctx, "top/anime", params)
}

// SearchAnime runs a free-text query against the anime index.
func (c *Client) SearchAnime(ctx context.Context, query string, limit, page int) ([]Anime, error) {
	if c == nil {
		return nil, errors.New("jikan: client is nil")
	}
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return c.list(ctx, "anime", params)
}

func (c *Client) list(ctx context.Context, path string, params url.Values) ([]Anime, error) {
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("jikan: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("jikan: %s request: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jikan: %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Data []Anime `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jikan: decode %s response: %w", path, err)
	}
	return payload.Data, nil
}
