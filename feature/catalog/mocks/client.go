package mocks

import (
	"context"
	"fmt"

	"catalog-importer/feature/catalog"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of the catalog client surface.
type Client struct {
	mock.Mock
}

func (m *Client) FetchBook(ctx context.Context, olid string) (*catalog.Book, error) {
	args := m.Called(ctx, olid)
	if book, ok := args.Get(0).(*catalog.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchAuthor(ctx context.Context, olid string) (*catalog.Author, error) {
	args := m.Called(ctx, olid)
	if author, ok := args.Get(0).(*catalog.Author); ok {
		return author, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchWork(ctx context.Context, olid string) (*catalog.Work, error) {
	args := m.Called(ctx, olid)
	if work, ok := args.Get(0).(*catalog.Work); ok {
		return work, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchEditions(ctx context.Context, workOLID string) (*catalog.EditionsPage, error) {
	args := m.Called(ctx, workOLID)
	if page, ok := args.Get(0).(*catalog.EditionsPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetByISBN(ctx context.Context, isbn string) (*catalog.ISBNRecord, error) {
	args := m.Called(ctx, isbn)
	if rec, ok := args.Get(0).(*catalog.ISBNRecord); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) AuthorPhotoURL(olid string) string {
	return fmt.Sprintf("https://covers.example.com/a/olid/%s.jpg", olid)
}

func (m *Client) CoverURL(coverID int64, size string) string {
	return fmt.Sprintf("https://covers.example.com/b/id/%d-%s.jpg", coverID, size)
}
