// Package models defines the persisted catalog entity graph: authors, books,
// editions, and subjects.
//
// Dedupe keys are modeled as unique indexes: slug for authors, books, and
// subjects, and the ISBN-10/ISBN-13 pair for editions. The import pipeline's
// upsert engine relies on these constraints to detect an already-ingested
// entity and fall back to a lookup.
package models
