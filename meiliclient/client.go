// Package meiliclient is a minimal Meilisearch REST client implementing
// the engine's Index oracle (spec §6) directly over net/http, against the
// documented `POST /indexes/:uid/search` endpoint.
package meiliclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fulmenhq/meilirank/model"
	"github.com/fulmenhq/meilirank/strategy"
)

// Client talks to one Meilisearch index.
type Client struct {
	baseURL    string
	indexUID   string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client (e.g. for custom
// timeouts or transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs a Client for baseURL (e.g. "http://localhost:7700") and
// indexUID, authenticated with apiKey (empty for an unsecured instance).
func New(baseURL, indexUID, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		indexUID:   indexUID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	Query                string      `json:"q"`
	Limit                int         `json:"limit,omitempty"`
	AttributesToSearchOn []string    `json:"attributesToSearchOn,omitempty"`
	Filter               interface{} `json:"filter,omitempty"`
}

type searchResponse struct {
	Hits []map[string]interface{} `json:"hits"`
}

// Search issues one Meilisearch search call and decodes hits into
// model.Candidate (spec §6 "Index oracle").
func (c *Client) Search(ctx context.Context, query string, opts strategy.SearchOptions) ([]model.Candidate, error) {
	body, err := json.Marshal(searchRequest{
		Query:                query,
		Limit:                opts.Limit,
		AttributesToSearchOn: opts.SearchableAttributes,
		Filter:               opts.Filters,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/search", c.baseURL, c.indexUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("meilisearch returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(parsed.Hits))
	for _, hit := range parsed.Hits {
		candidates = append(candidates, candidateFromHit(hit))
	}
	return candidates, nil
}

func candidateFromHit(hit map[string]interface{}) model.Candidate {
	c := model.Candidate{Attrs: make(map[string]string)}
	for k, v := range hit {
		s := stringifyAttr(v)
		switch k {
		case "name":
			c.Name = s
		case "name_search":
			c.NameSearch = s
		case "name_no_space":
			c.NameNoSpace = s
		case "name_soundex":
			c.NameSoundex = s
		case "id":
			c.ID = s
		case "id_etab":
			c.IDEtab = s
		default:
			c.Attrs[k] = s
		}
	}
	return c
}

func stringifyAttr(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return fmt.Sprintf("%v", s)
		}
		return string(b)
	}
}
