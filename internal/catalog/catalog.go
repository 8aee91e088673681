// Package catalog fetches the active offering catalog from the backend.
// The catalog is the source of truth for which recommendations are legal:
// the analysis step may only recommend offerings that appear in it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	activeOfferingsPath = "/api/routes/course/active"
	defaultTimeout      = 15 * time.Second
)

// Offering is one catalog entry (a course) recommendations are constrained to.
type Offering struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// ErrBadStatus indicates the catalog endpoint answered with a non-2xx status.
type ErrBadStatus struct {
	Status int
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("catalog request failed with status %d", e.Status)
}

// Client fetches offerings over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// BaseURLFromEnv reads the backend base URL from PATHFINDER_API_BASE_URL.
func BaseURLFromEnv() (string, error) {
	u := os.Getenv("PATHFINDER_API_BASE_URL")
	if u == "" {
		return "", fmt.Errorf("PATHFINDER_API_BASE_URL is not set")
	}
	return u, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchActive retrieves the active offering catalog. The caller caches the
// result for the session; this is issued at most once per session.
func (c *Client) FetchActive(ctx context.Context) ([]Offering, error) {
	url := c.baseURL + activeOfferingsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch offerings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrBadStatus{Status: resp.StatusCode}
	}

	var body struct {
		Data []Offering `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode offerings: %w", err)
	}

	return body.Data, nil
}

// DetailLink constructs the public detail page link for an offering.
func DetailLink(baseURL, offeringID string) string {
	return strings.TrimRight(baseURL, "/") + "/courses/" + offeringID
}

// Titles returns the offering titles in catalog order.
func Titles(offerings []Offering) []string {
	titles := make([]string, len(offerings))
	for i, o := range offerings {
		titles[i] = o.Title
	}
	return titles
}

// ByID indexes offerings by identifier.
func ByID(offerings []Offering) map[string]Offering {
	m := make(map[string]Offering, len(offerings))
	for _, o := range offerings {
		m[o.ID] = o
	}
	return m
}
