// Package slug provides URL-safe identifier normalization for catalog entities.
//
// Slugs are the dedupe keys for authors, books, and subjects: re-ingesting the
// same entity must always produce the same slug, so the transformation is
// deterministic, total, and idempotent.
//
// # Transformation
//
// Make lower-cases the input, transliterates a fixed accented-character set to
// ASCII, removes every character outside [a-z0-9 -], collapses whitespace and
// dash runs into single dashes, and trims leading/trailing dashes.
//
// # Usage
//
//	slug.Make("Gabriel García Márquez") // "gabriel-garcia-marquez"
package slug
