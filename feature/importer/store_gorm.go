package importer

import (
	"context"

	"catalog-importer/feature/importer/models"

	"gorm.io/gorm"
)

// GormStore implements Store against the MySQL entity store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateAuthor(ctx context.Context, author *models.Author) error {
	return s.db.WithContext(ctx).Create(author).Error
}

func (s *GormStore) FindAuthorBySlug(ctx context.Context, slug string) (*models.Author, error) {
	var authors []models.Author
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Limit(1).Find(&authors).Error; err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return &authors[0], nil
}

func (s *GormStore) CreateBook(ctx context.Context, book *models.Book) error {
	return s.db.WithContext(ctx).Create(book).Error
}

func (s *GormStore) FindBookBySlug(ctx context.Context, slug string) (*models.Book, error) {
	var books []models.Book
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Limit(1).Find(&books).Error; err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}
	return &books[0], nil
}

func (s *GormStore) CreateEdition(ctx context.Context, edition *models.Edition) error {
	return s.db.WithContext(ctx).Create(edition).Error
}

func (s *GormStore) FindEditionByISBN(ctx context.Context, isbn10, isbn13 *string) (*models.Edition, error) {
	if isbn10 == nil && isbn13 == nil {
		return nil, nil
	}

	query := s.db.WithContext(ctx)
	switch {
	case isbn10 != nil && isbn13 != nil:
		query = query.Where("isbn10 = ? OR isbn13 = ?", *isbn10, *isbn13)
	case isbn10 != nil:
		query = query.Where("isbn10 = ?", *isbn10)
	default:
		query = query.Where("isbn13 = ?", *isbn13)
	}

	var editions []models.Edition
	if err := query.Limit(1).Find(&editions).Error; err != nil {
		return nil, err
	}
	if len(editions) == 0 {
		return nil, nil
	}
	return &editions[0], nil
}

func (s *GormStore) CreateSubject(ctx context.Context, subject *models.Subject) error {
	return s.db.WithContext(ctx).Create(subject).Error
}

func (s *GormStore) FindSubjectBySlug(ctx context.Context, slug string) (*models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Limit(1).Find(&subjects).Error; err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, nil
	}
	return &subjects[0], nil
}

func (s *GormStore) UpdateBookEditions(ctx context.Context, bookID uint, editionIDs []uint, activeEditionID *uint) error {
	db := s.db.WithContext(ctx)

	if len(editionIDs) > 0 {
		if err := db.Model(&models.Edition{}).
			Where("id IN ?", editionIDs).
			Update("book_id", bookID).Error; err != nil {
			return err
		}
	}

	return db.Model(&models.Book{}).
		Where("id = ?", bookID).
		Update("active_edition_id", activeEditionID).Error
}
