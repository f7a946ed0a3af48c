package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"catalog-importer/core/slug"
	"catalog-importer/core/utils"
	"catalog-importer/feature/catalog"
	"catalog-importer/feature/importer/models"
	"catalog-importer/feature/media"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// Catalog is the external catalog collaborator of the import pipeline.
// *catalog.Client satisfies it.
type Catalog interface {
	FetchBook(ctx context.Context, olid string) (*catalog.Book, error)
	FetchAuthor(ctx context.Context, olid string) (*catalog.Author, error)
	FetchWork(ctx context.Context, olid string) (*catalog.Work, error)
	FetchEditions(ctx context.Context, workOLID string) (*catalog.EditionsPage, error)
	GetByISBN(ctx context.Context, isbn string) (*catalog.ISBNRecord, error)
	AuthorPhotoURL(olid string) string
	CoverURL(coverID int64, size string) string
}

// Result is the aggregate outcome of one ingestion run.
type Result struct {
	Book          *models.Book      `json:"book"`
	Authors       []*models.Author  `json:"authors"`
	Subjects      []*models.Subject `json:"subjects"`
	Editions      []*models.Edition `json:"editions"`
	ActiveEdition *models.Edition   `json:"active_edition,omitempty"`
}

// Service orchestrates a full ingestion run: catalog traversal, image
// re-hosting, and entity resolution.
//
// Failure policy: the run aborts only when the book itself cannot be
// resolved or persisted. A failing author, subject, edition, or image is
// logged and dropped; the rest of the graph still lands.
type Service struct {
	catalog Catalog
	media   media.Acquirer
	upserts *Upserter
	store   Store
	logger  *zap.Logger
}

// NewService creates the import orchestrator.
func NewService(cat Catalog, acquirer media.Acquirer, store Store, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		media:   acquirer,
		upserts: NewUpserter(store, logger),
		store:   store,
		logger:  logger,
	}
}

// ImportByISBN resolves the ISBN to an edition identifier and runs a full
// ingestion from that edition.
func (s *Service) ImportByISBN(ctx context.Context, isbn string) (*Result, error) {
	cleaned := utils.CleanISBN(isbn)
	record, err := s.catalog.GetByISBN(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	olid := record.EditionOLID()
	if olid == "" {
		return nil, fmt.Errorf("isbn %s resolved to a record without an edition identifier", cleaned)
	}
	return s.ImportByOLID(ctx, olid)
}

// ImportByOLID runs a full ingestion starting from an edition identifier:
// edition document, canonical work, contributors, subjects, then every
// edition of the work in catalog order.
func (s *Service) ImportByOLID(ctx context.Context, olid string) (*Result, error) {
	root, err := s.catalog.FetchBook(ctx, olid)
	if err != nil {
		return nil, err
	}
	if len(root.Works) == 0 {
		return nil, fmt.Errorf("edition %s belongs to no work", olid)
	}
	workOLID := root.Works[0].OLID()

	work, err := s.catalog.FetchWork(ctx, workOLID)
	if err != nil {
		return nil, err
	}
	editionsPage, err := s.catalog.FetchEditions(ctx, workOLID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Importing work",
		zap.String("work", workOLID),
		zap.String("title", work.Title),
		zap.Int("editions", len(editionsPage.Entries)),
		zap.Int("authors", len(work.Authors)),
	)

	authors, subjects := s.resolveContributors(ctx, work)

	book, err := s.saveBook(ctx, root, work, authors, subjects)
	if err != nil {
		return nil, err
	}

	editions, active := s.saveEditions(ctx, book, root, editionsPage.Entries)

	if len(editions) > 0 {
		ids := make([]uint, 0, len(editions))
		for _, e := range editions {
			ids = append(ids, e.ID)
		}
		var activeID *uint
		if active != nil {
			activeID = &active.ID
		}
		if err := s.store.UpdateBookEditions(ctx, book.ID, ids, activeID); err != nil {
			return nil, &PersistenceError{Kind: "book", Key: book.Slug, Err: err}
		}
		book.ActiveEditionID = activeID
	}

	return &Result{
		Book:          book,
		Authors:       authors,
		Subjects:      subjects,
		Editions:      editions,
		ActiveEdition: active,
	}, nil
}

// resolveContributors fans out author and subject resolution concurrently.
// Failures are contained per item: a failing author or subject is dropped
// and the siblings proceed.
func (s *Service) resolveContributors(ctx context.Context, work *catalog.Work) ([]*models.Author, []*models.Subject) {
	var mu sync.Mutex
	authorSlots := make([]*models.Author, len(work.Authors))
	subjectSlots := make([]*models.Subject, len(work.Subjects))

	g, gctx := errgroup.WithContext(ctx)

	for i, wa := range work.Authors {
		i, authorOLID := i, wa.Author.OLID()
		g.Go(func() error {
			author, err := s.resolveAuthor(gctx, authorOLID)
			if err != nil {
				s.logger.Warn("Dropping author", zap.String("author", authorOLID), zap.Error(err))
				return nil
			}
			mu.Lock()
			authorSlots[i] = author
			mu.Unlock()
			return nil
		})
	}

	for i, name := range work.Subjects {
		i, name := i, name
		g.Go(func() error {
			subject, err := s.upserts.Subject(gctx, &models.Subject{
				Name: name,
				Slug: slug.Make(name),
			})
			if err != nil {
				s.logger.Warn("Dropping subject", zap.String("subject", name), zap.Error(err))
				return nil
			}
			mu.Lock()
			subjectSlots[i] = subject
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	authors := make([]*models.Author, 0, len(authorSlots))
	for _, a := range authorSlots {
		if a != nil {
			authors = append(authors, a)
		}
	}
	subjects := make([]*models.Subject, 0, len(subjectSlots))
	for _, sub := range subjectSlots {
		if sub != nil {
			subjects = append(subjects, sub)
		}
	}
	return authors, subjects
}

// resolveAuthor fetches one author document, re-hosts the portrait when one
// exists, and resolves the entity. A portrait failure degrades to an author
// without a photo rather than dropping the author.
func (s *Service) resolveAuthor(ctx context.Context, olid string) (*models.Author, error) {
	doc, err := s.catalog.FetchAuthor(ctx, olid)
	if err != nil {
		return nil, err
	}

	author := &models.Author{
		Name:        doc.Name,
		Biography:   doc.Bio.Value,
		BirthYear:   utils.ParseYear(doc.BirthDate),
		Slug:        slug.Make(doc.Name),
		Identifiers: marshalJSON(doc.RemoteIDs),
		Links:       marshalJSON(doc.Links),
	}

	if len(doc.Photos) > 0 {
		photoURL := s.catalog.AuthorPhotoURL(doc.OLID())
		asset, err := s.media.AcquirePortrait(ctx, photoURL)
		if err != nil {
			s.logger.Warn("Author portrait unavailable",
				zap.String("author", olid),
				zap.String("source_url", photoURL),
				zap.Error(err),
			)
		} else {
			author.PhotoID = &asset.ID
		}
	}

	return s.upserts.Author(ctx, author)
}

// saveBook resolves the book row with its contributor and subject
// associations attached. This is the only fatal persistence step of a run.
func (s *Service) saveBook(ctx context.Context, root *catalog.Book, work *catalog.Work, authors []*models.Author, subjects []*models.Subject) (*models.Book, error) {
	book := &models.Book{
		Name:                    work.Title,
		Subtitle:                root.Subtitle,
		Summary:                 work.Description.Value,
		Slug:                    slug.Make(work.Title),
		OriginalPublicationDate: utils.ParseDate(work.FirstPublishDate),
	}
	for _, a := range authors {
		book.Authors = append(book.Authors, *a)
	}
	for _, sub := range subjects {
		book.Subjects = append(book.Subjects, *sub)
	}
	return s.upserts.Book(ctx, book)
}

// saveEditions processes the work's editions strictly sequentially, in
// catalog order, and returns the saved editions plus the active designation:
// the edition matching the root identifier, else the first saved one.
func (s *Service) saveEditions(ctx context.Context, book *models.Book, root *catalog.Book, entries []catalog.Book) ([]*models.Edition, *models.Edition) {
	rootOLID := root.OLID()

	var editions []*models.Edition
	var active *models.Edition

	for _, entry := range entries {
		edition := s.buildEdition(ctx, book, entry)

		saved, err := s.upserts.Edition(ctx, edition)
		if err != nil {
			s.logger.Warn("Dropping edition", zap.String("edition", entry.OLID()), zap.Error(err))
			continue
		}
		editions = append(editions, saved)

		if entry.OLID() == rootOLID {
			active = saved
		}
	}

	if active == nil && len(editions) > 0 {
		active = editions[0]
	}
	return editions, active
}

// buildEdition maps one catalog edition document to an entity, re-hosting
// its cover when one exists. A cover failure degrades to an edition without
// a cover.
func (s *Service) buildEdition(ctx context.Context, book *models.Book, entry catalog.Book) *models.Edition {
	edition := &models.Edition{
		BookID:          &book.ID,
		Title:           entry.Title,
		Description:     entry.Description.Value,
		PageCount:       entry.NumberOfPages,
		PublicationDate: utils.ParseDate(entry.PublishDate),
		Format:          entry.PhysicalFormat,
		External:        strings.Join(entry.SourceRecords, ";"),
	}
	if isbn := firstISBN(entry.ISBN10); isbn != nil {
		edition.ISBN10 = isbn
	}
	if isbn := firstISBN(entry.ISBN13); isbn != nil {
		edition.ISBN13 = isbn
	}
	if len(entry.Languages) > 0 {
		edition.Language = entry.Languages[0].OLID()
	}

	if len(entry.Covers) > 0 {
		coverURL := s.catalog.CoverURL(entry.Covers[0], "L")
		asset, err := s.media.Acquire(ctx, coverURL)
		if err != nil {
			s.logger.Warn("Edition cover unavailable",
				zap.String("edition", entry.OLID()),
				zap.String("source_url", coverURL),
				zap.Error(err),
			)
		} else {
			edition.CoverID = &asset.ID
		}
	}
	return edition
}

func firstISBN(values []string) *string {
	for _, v := range values {
		if cleaned := utils.CleanISBN(v); cleaned != "" {
			return &cleaned
		}
	}
	return nil
}

func marshalJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
