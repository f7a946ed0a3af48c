package importer_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-importer/feature/catalog"
	catalogmocks "catalog-importer/feature/catalog/mocks"
	"catalog-importer/feature/importer"
	"catalog-importer/feature/importer/mocks"
	"catalog-importer/feature/importer/models"
	mediamocks "catalog-importer/feature/media/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(cat *catalogmocks.Client, acquirer *mediamocks.Acquirer, store *mocks.Store) *fiber.App {
	app := fiber.New()
	feature := importer.NewFeature(cat, acquirer, store, zap.NewNop())
	err := feature.Load(app)
	if err != nil {
		panic(err)
	}
	return app
}

func TestHandleImportMissingIdentifier(t *testing.T) {
	app := newTestApp(new(catalogmocks.Client), new(mediamocks.Acquirer), new(mocks.Store))

	req := httptest.NewRequest("POST", "/import", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "isbn or olid")
}

func TestHandleImportByOLID(t *testing.T) {
	cat := new(catalogmocks.Client)
	store := new(mocks.Store)

	cat.On("FetchBook", mock.Anything, "OL1M").Return(&catalog.Book{
		Key:   "/books/OL1M",
		Works: []catalog.KeyRef{{Key: "/works/OL1W"}},
	}, nil)
	cat.On("FetchWork", mock.Anything, "OL1W").Return(&catalog.Work{
		Key:   "/works/OL1W",
		Title: "Dune",
	}, nil)
	cat.On("FetchEditions", mock.Anything, "OL1W").Return(&catalog.EditionsPage{
		Entries: []catalog.Book{{Key: "/books/OL1M", Title: "Dune"}},
	}, nil)

	store.On("CreateBook", mock.Anything, mock.AnythingOfType("*models.Book")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Book).ID = 1
		}).Return(nil)
	store.On("CreateEdition", mock.Anything, mock.AnythingOfType("*models.Edition")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Edition).ID = 2
		}).Return(nil)
	store.On("UpdateBookEditions", mock.Anything, uint(1), []uint{2}, mock.Anything).Return(nil)

	app := newTestApp(cat, new(mediamocks.Acquirer), store)

	req := httptest.NewRequest("POST", "/import?olid=OL1M", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res importer.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NotNil(t, res.Book)
	assert.Equal(t, "dune", res.Book.Slug)
	require.Len(t, res.Editions, 1)
	require.NotNil(t, res.ActiveEdition)
	assert.Equal(t, res.Editions[0].ID, res.ActiveEdition.ID)
}

func TestHandleImportResolutionFailureIsClientError(t *testing.T) {
	cat := new(catalogmocks.Client)
	cat.On("GetByISBN", mock.Anything, "9780000000002").
		Return(nil, &catalog.UpstreamError{Op: "get_by_isbn", StatusCode: 404})

	app := newTestApp(cat, new(mediamocks.Acquirer), new(mocks.Store))

	req := httptest.NewRequest("POST", "/import?isbn=9780000000002", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "get_by_isbn")
}

func TestHandleImportPersistenceFailureIsServerError(t *testing.T) {
	cat := new(catalogmocks.Client)
	store := new(mocks.Store)

	cat.On("FetchBook", mock.Anything, "OL1M").Return(&catalog.Book{
		Key:   "/books/OL1M",
		Works: []catalog.KeyRef{{Key: "/works/OL1W"}},
	}, nil)
	cat.On("FetchWork", mock.Anything, "OL1W").Return(&catalog.Work{Key: "/works/OL1W", Title: "Dune"}, nil)
	cat.On("FetchEditions", mock.Anything, "OL1W").Return(&catalog.EditionsPage{}, nil)
	store.On("CreateBook", mock.Anything, mock.AnythingOfType("*models.Book")).
		Return(errors.New("connection refused"))

	app := newTestApp(cat, new(mediamocks.Acquirer), store)

	req := httptest.NewRequest("POST", "/import?olid=OL1M", nil)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFeatureMetadata(t *testing.T) {
	feature := importer.NewFeature(new(catalogmocks.Client), new(mediamocks.Acquirer), new(mocks.Store), zap.NewNop())
	assert.Equal(t, "importer", feature.Name())
	assert.True(t, feature.IsEnabled())
}
