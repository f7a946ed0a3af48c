package catalog

import "fmt"

// UpstreamError reports a failed catalog fetch: transport failure, non-2xx
// status, or a malformed response body.
type UpstreamError struct {
	// Op is the client operation that failed (e.g. "fetch_work").
	Op string
	// URL is the requested resource.
	URL string
	// StatusCode is the HTTP status, 0 when the request never completed.
	StatusCode int
	// Err is the underlying cause, nil for plain status errors.
	Err error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
