// Package importer orchestrates the ingestion of a book graph from the
// external catalog into the entity store: the canonical work, its
// contributors and subjects, and every edition in catalog order, with
// images re-hosted through the media pipeline.
//
// Entity resolution is idempotent: creates that hit a dedupe key fall back
// to a lookup, so re-importing a book converges on the same rows.
package importer
