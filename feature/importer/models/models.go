package models

import (
	"time"

	"gorm.io/datatypes"
)

// Author is a book contributor resolved from the external catalog.
// Slug is the dedupe key: re-ingesting the same external author resolves to
// the same row.
type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Biography string `gorm:"type:text" json:"biography"`
	BirthYear int    `json:"birth_year"`
	Slug      string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	PhotoID   *uint  `json:"photo_id"`

	// Identifiers holds the external identifier strings (VIAF, Wikidata, ...).
	Identifiers datatypes.JSON `json:"identifiers"`
	// Links holds {url, type, title} link records.
	Links datatypes.JSON `json:"links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is the root entity of an ingestion run.
type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Subtitle string `gorm:"size:255" json:"subtitle"`
	Summary  string `gorm:"type:text" json:"summary"`
	Slug     string `gorm:"size:255;uniqueIndex;not null" json:"slug"`

	OriginalPublicationDate *time.Time `json:"original_publication_date"`

	// ActiveEditionID designates the displayed edition. When set it is always
	// a member of Editions; nil until the edition pass completes.
	ActiveEditionID *uint `json:"active_edition_id"`

	Authors  []Author  `gorm:"many2many:book_authors" json:"authors,omitempty"`
	Subjects []Subject `gorm:"many2many:book_subjects" json:"subjects,omitempty"`
	Editions []Edition `json:"editions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Edition is a single published form of a book. Two editions sharing either
// ISBN are the same entity; both columns are nullable so editions lacking one
// of the identifiers can still be stored.
type Edition struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	BookID *uint `gorm:"index" json:"book_id"`

	ISBN10 *string `gorm:"size:10;uniqueIndex" json:"isbn10"`
	ISBN13 *string `gorm:"size:13;uniqueIndex" json:"isbn13"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	PageCount   int    `json:"page_count"`

	PublicationDate *time.Time `json:"publication_date"`

	Format             string `gorm:"size:64" json:"format"`
	AudioLengthSeconds int    `json:"audio_length_seconds"`
	// Language is the catalog language code (e.g. "eng").
	Language string `gorm:"size:16" json:"language"`
	CoverID  *uint  `json:"cover_id"`
	// External carries free-text provenance from the catalog source records.
	External string `gorm:"size:255" json:"external"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subject is a topical classification attached to books.
type Subject struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
