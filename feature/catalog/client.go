package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client is the typed HTTP client for the external catalog source.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	coversBaseURL string
	userAgent     string
	limiter       *rate.Limiter
}

// NewClient creates a catalog client from the configuration.
func NewClient(cfg Config) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL:       cfg.BaseURL,
		coversBaseURL: cfg.CoversBaseURL,
		userAgent:     cfg.UserAgent,
		limiter:       rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// FetchBook fetches a single edition document by its external identifier.
func (c *Client) FetchBook(ctx context.Context, olid string) (*Book, error) {
	var book Book
	u := fmt.Sprintf("%s/books/%s.json", c.baseURL, url.PathEscape(olid))
	if err := c.get(ctx, "fetch_book", u, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// FetchAuthor fetches an author document by its external identifier.
func (c *Client) FetchAuthor(ctx context.Context, olid string) (*Author, error) {
	var author Author
	u := fmt.Sprintf("%s/authors/%s.json", c.baseURL, url.PathEscape(olid))
	if err := c.get(ctx, "fetch_author", u, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// FetchWork fetches the canonical work document by its external identifier.
func (c *Client) FetchWork(ctx context.Context, olid string) (*Work, error) {
	var work Work
	u := fmt.Sprintf("%s/works/%s.json", c.baseURL, url.PathEscape(olid))
	if err := c.get(ctx, "fetch_work", u, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// FetchEditions fetches the edition list of a work, in catalog order.
func (c *Client) FetchEditions(ctx context.Context, workOLID string) (*EditionsPage, error) {
	var page EditionsPage
	u := fmt.Sprintf("%s/works/%s/editions.json", c.baseURL, url.PathEscape(workOLID))
	if err := c.get(ctx, "fetch_editions", u, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByISBN resolves an ISBN to its edition record.
// Returns an *UpstreamError when the catalog knows nothing about the ISBN.
func (c *Client) GetByISBN(ctx context.Context, isbn string) (*ISBNRecord, error) {
	bibkey := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, url.QueryEscape(bibkey))

	var res map[string]ISBNRecord
	if err := c.get(ctx, "get_by_isbn", u, &res); err != nil {
		return nil, err
	}
	rec, ok := res[bibkey]
	if !ok {
		return nil, &UpstreamError{Op: "get_by_isbn", URL: u, Err: fmt.Errorf("isbn %s not found in catalog", isbn)}
	}
	return &rec, nil
}

// AuthorPhotoURL builds the cover-host URL of an author's portrait.
func (c *Client) AuthorPhotoURL(olid string) string {
	return fmt.Sprintf("%s/a/olid/%s.jpg", c.coversBaseURL, url.PathEscape(olid))
}

// CoverURL builds the cover-host URL for a cover image id.
// Size is one of "S", "M", "L".
func (c *Client) CoverURL(coverID int64, size string) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", c.coversBaseURL, coverID, size)
}

// get performs a single rate-limited GET and decodes the JSON body.
// No retries here: the orchestrator owns retry policy.
func (c *Client) get(ctx context.Context, op, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &UpstreamError{Op: op, URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &UpstreamError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Op: op, URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &UpstreamError{Op: op, URL: url, Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}
