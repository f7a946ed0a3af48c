package mocks

import (
	"context"

	"catalog-importer/feature/importer/models"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of importer.Store.
type Store struct {
	mock.Mock
}

func (m *Store) CreateAuthor(ctx context.Context, author *models.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *Store) FindAuthorBySlug(ctx context.Context, slug string) (*models.Author, error) {
	args := m.Called(ctx, slug)
	if author, ok := args.Get(0).(*models.Author); ok {
		return author, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateBook(ctx context.Context, book *models.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *Store) FindBookBySlug(ctx context.Context, slug string) (*models.Book, error) {
	args := m.Called(ctx, slug)
	if book, ok := args.Get(0).(*models.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateEdition(ctx context.Context, edition *models.Edition) error {
	args := m.Called(ctx, edition)
	return args.Error(0)
}

func (m *Store) FindEditionByISBN(ctx context.Context, isbn10, isbn13 *string) (*models.Edition, error) {
	args := m.Called(ctx, isbn10, isbn13)
	if edition, ok := args.Get(0).(*models.Edition); ok {
		return edition, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) CreateSubject(ctx context.Context, subject *models.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *Store) FindSubjectBySlug(ctx context.Context, slug string) (*models.Subject, error) {
	args := m.Called(ctx, slug)
	if subject, ok := args.Get(0).(*models.Subject); ok {
		return subject, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) UpdateBookEditions(ctx context.Context, bookID uint, editionIDs []uint, activeEditionID *uint) error {
	args := m.Called(ctx, bookID, editionIDs, activeEditionID)
	return args.Error(0)
}
