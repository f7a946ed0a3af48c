// Package catalog implements the read-only client for the Open Library
// bibliographic source.
//
// Each fetch operation issues exactly one HTTP GET, throttled by a shared
// rate limiter, and decodes the JSON response into an explicit typed record.
// Loosely shaped upstream fields (description/bio can be a bare string or a
// {type, value} object) are normalized at this boundary so nothing duck-typed
// leaks downstream.
//
// # Operations
//
//   - FetchBook: edition document by OLID (/books/{olid}.json)
//   - FetchAuthor: author document by OLID (/authors/{olid}.json)
//   - FetchWork: work document by OLID (/works/{olid}.json)
//   - FetchEditions: edition list for a work (/works/{olid}/editions.json)
//   - GetByISBN: edition resolution by ISBN (/api/books?bibkeys=ISBN:...)
//
// # Errors
//
// Every failure (transport error, non-2xx status, malformed JSON) is reported
// as *UpstreamError. The client performs no retries; retry policy belongs to
// the orchestrator.
package catalog
