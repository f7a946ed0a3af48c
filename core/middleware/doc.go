// Package middleware groups the Fiber middleware used by the catalog-importer
// HTTP surface.
//
// # Subpackages
//
//   - rayid: assigns every request a unique ray ID (UUID) stored in Fiber
//     locals and echoed in the X-Ray-Id response header, so all log lines of
//     an import run can be correlated.
//   - auth: API-key protection. Requests must present the configured key in
//     the X-API-Key header; an empty configured key disables the check.
package middleware
