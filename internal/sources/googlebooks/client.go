// Package googlebooks fetches candidate book records from the Google Books
// volumes API. It is the only remote collaborator of the system: a search
// query in, zero or more partially-populated records out. Any network,
// status, or decode failure is reported as a single import failure, never
// partial data.
package googlebooks

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"

	"github.com/shelfctl/shelf/pkg/books"
	"github.com/shelfctl/shelf/pkg/constants"
	"github.com/shelfctl/shelf/pkg/errors"
)

// DefaultBaseURL is the Google Books volume search endpoint.
const DefaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

const sourceName = "googlebooks"

// Client queries the volumes endpoint. The underlying HTTP client always
// carries a timeout so a stalled remote call surfaces as an import failure
// instead of hanging the process.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the volume search endpoint. Mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the HTTP timeout for lookups.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// New creates a catalog client with the default endpoint and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// volumesResponse mirrors the slice of the volumes payload we consume.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo volumeInfo `json:"volumeInfo"`
	} `json:"items"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Categories    []string `json:"categories"`
	PublishedDate string   `json:"publishedDate"`
}

// Search returns up to limit candidate records for the query, in the order
// the catalog returned them. Zero candidates is a valid outcome with a nil
// error; the caller decides how to report it.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]books.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &errors.ValidationError{Field: "query", Message: "must not be empty"}
	}
	if limit <= 0 {
		limit = constants.DefaultImportLimit
	}
	if limit > constants.MaxImportLimit {
		limit = constants.MaxImportLimit
	}

	var resp volumesResponse
	err := requests.
		URL(c.baseURL).
		Client(c.http).
		Param("q", query).
		Param("maxResults", strconv.Itoa(limit)).
		ToJSON(&resp).
		Fetch(ctx)
	if err != nil {
		// Connection errors, timeouts, non-2xx statuses, and decode
		// failures all land here; callers see one import failure.
		return nil, &errors.APIError{
			Source:   sourceName,
			Endpoint: c.baseURL,
			Message:  "volume search failed",
			Err:      err,
		}
	}

	out := make([]books.Book, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, convert(item.VolumeInfo))
	}
	return out, nil
}

// convert maps one volume onto a candidate record, defaulting absent fields
// the way the catalog contract describes. Status is left empty and defaulted
// by the add operation.
func convert(v volumeInfo) books.Book {
	b := books.Book{
		Title:  strings.TrimSpace(v.Title),
		Author: strings.Join(v.Authors, ", "),
		Genre:  "General",
	}
	if b.Title == "" {
		b.Title = "Unknown"
	}
	if b.Author == "" {
		b.Author = "Unknown"
	}
	if len(v.Categories) > 0 && strings.TrimSpace(v.Categories[0]) != "" {
		b.Genre = strings.TrimSpace(v.Categories[0])
	}
	b.Year = parseYear(v.PublishedDate)
	return b
}

// parseYear extracts the leading year from a published date such as
// "1965", "1965-08", or "1965-08-01". Anything unparseable maps to zero.
func parseYear(date string) int {
	year, _, _ := strings.Cut(strings.TrimSpace(date), "-")
	n, err := strconv.Atoi(year)
	if err != nil || n < 1000 || n > 9999 {
		return 0
	}
	return n
}
