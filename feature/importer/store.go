package importer

import (
	"context"

	"catalog-importer/feature/importer/models"
)

// Store is the persistent entity store collaborator. The pipeline depends
// only on create, lookup, and the single final book mutation; broader query
// capability deliberately stays out of the contract.
//
// Implementations must surface uniqueness violations on a dedupe key as
// gorm.ErrDuplicatedKey so the upsert engine can fall back to a lookup.
type Store interface {
	CreateAuthor(ctx context.Context, author *models.Author) error
	// FindAuthorBySlug returns nil without error when no author matches.
	FindAuthorBySlug(ctx context.Context, slug string) (*models.Author, error)

	CreateBook(ctx context.Context, book *models.Book) error
	FindBookBySlug(ctx context.Context, slug string) (*models.Book, error)

	CreateEdition(ctx context.Context, edition *models.Edition) error
	// FindEditionByISBN matches on either identifier; nil arguments are
	// skipped. Returns nil without error when no edition matches.
	FindEditionByISBN(ctx context.Context, isbn10, isbn13 *string) (*models.Edition, error)

	CreateSubject(ctx context.Context, subject *models.Subject) error
	FindSubjectBySlug(ctx context.Context, slug string) (*models.Subject, error)

	// UpdateBookEditions attaches the edition list to the book and sets its
	// active edition pointer. This is the single end-of-run book mutation.
	UpdateBookEditions(ctx context.Context, bookID uint, editionIDs []uint, activeEditionID *uint) error
}
