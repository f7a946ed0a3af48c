package importer

import (
	"context"
	"errors"
	"fmt"

	"catalog-importer/feature/importer/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errVanishedDuplicate marks the race where the create hit a uniqueness
// violation but the fallback lookup found no row.
var errVanishedDuplicate = errors.New("duplicate reported but lookup returned no rows")

// Upserter implements create-or-find entity resolution.
//
// Each method attempts a create; on a uniqueness violation of the entity's
// dedupe key it looks the existing row up and returns that instead, so a
// second call with an equivalent payload yields the same id. This is the
// pipeline's only idempotency mechanism and is deliberately not atomic:
// ingestion runs are operator-triggered and low-concurrency per entity.
type Upserter struct {
	store  Store
	logger *zap.Logger
}

// NewUpserter creates an upsert engine over the given store.
func NewUpserter(store Store, logger *zap.Logger) *Upserter {
	return &Upserter{store: store, logger: logger}
}

// Author resolves an author by its slug.
func (u *Upserter) Author(ctx context.Context, author *models.Author) (*models.Author, error) {
	err := u.store.CreateAuthor(ctx, author)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &PersistenceError{Kind: "author", Key: author.Slug, Err: err}
	}

	u.logger.Debug("Author exists, falling back to lookup", zap.String("slug", author.Slug))
	found, ferr := u.store.FindAuthorBySlug(ctx, author.Slug)
	if ferr != nil {
		return nil, &PersistenceError{Kind: "author", Key: author.Slug, Err: ferr}
	}
	if found == nil {
		return nil, &PersistenceError{Kind: "author", Key: author.Slug, Err: errVanishedDuplicate}
	}
	return found, nil
}

// Book resolves a book by its slug.
func (u *Upserter) Book(ctx context.Context, book *models.Book) (*models.Book, error) {
	err := u.store.CreateBook(ctx, book)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &PersistenceError{Kind: "book", Key: book.Slug, Err: err}
	}

	u.logger.Debug("Book exists, falling back to lookup", zap.String("slug", book.Slug))
	found, ferr := u.store.FindBookBySlug(ctx, book.Slug)
	if ferr != nil {
		return nil, &PersistenceError{Kind: "book", Key: book.Slug, Err: ferr}
	}
	if found == nil {
		return nil, &PersistenceError{Kind: "book", Key: book.Slug, Err: errVanishedDuplicate}
	}
	return found, nil
}

// Edition resolves an edition by its ISBN pair: two payloads sharing either
// ISBN are the same entity.
func (u *Upserter) Edition(ctx context.Context, edition *models.Edition) (*models.Edition, error) {
	err := u.store.CreateEdition(ctx, edition)
	if err == nil {
		return edition, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &PersistenceError{Kind: "edition", Key: editionKey(edition), Err: err}
	}

	u.logger.Debug("Edition exists, falling back to lookup", zap.String("isbn", editionKey(edition)))
	found, ferr := u.store.FindEditionByISBN(ctx, edition.ISBN10, edition.ISBN13)
	if ferr != nil {
		return nil, &PersistenceError{Kind: "edition", Key: editionKey(edition), Err: ferr}
	}
	if found == nil {
		return nil, &PersistenceError{Kind: "edition", Key: editionKey(edition), Err: errVanishedDuplicate}
	}
	return found, nil
}

// Subject resolves a subject by its slug.
func (u *Upserter) Subject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	err := u.store.CreateSubject(ctx, subject)
	if err == nil {
		return subject, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &PersistenceError{Kind: "subject", Key: subject.Slug, Err: err}
	}

	found, ferr := u.store.FindSubjectBySlug(ctx, subject.Slug)
	if ferr != nil {
		return nil, &PersistenceError{Kind: "subject", Key: subject.Slug, Err: ferr}
	}
	if found == nil {
		return nil, &PersistenceError{Kind: "subject", Key: subject.Slug, Err: errVanishedDuplicate}
	}
	return found, nil
}

func editionKey(edition *models.Edition) string {
	isbn10, isbn13 := "", ""
	if edition.ISBN10 != nil {
		isbn10 = *edition.ISBN10
	}
	if edition.ISBN13 != nil {
		isbn13 = *edition.ISBN13
	}
	return fmt.Sprintf("isbn10=%s,isbn13=%s", isbn10, isbn13)
}
