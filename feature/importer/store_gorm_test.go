package importer

import (
	"context"
	"regexp"
	"testing"

	"catalog-importer/feature/importer/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// mysqlDuplicateErr is what the server returns on a uniqueness violation.
var mysqlDuplicateErr = mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStoreCreateSubject(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `subjects`")).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	subject := &models.Subject{Name: "Science Fiction", Slug: "science-fiction"}
	err := store.CreateSubject(context.Background(), subject)

	require.NoError(t, err)
	assert.Equal(t, uint(5), subject.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreCreateSubjectDuplicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `subjects`")).
		WillReturnError(&mysqlDuplicateErr)
	mock.ExpectRollback()

	err := store.CreateSubject(context.Background(), &models.Subject{Name: "Science Fiction", Slug: "science-fiction"})

	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreFindAuthorBySlug(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
		AddRow(7, "Frank Herbert", "frank-herbert")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `authors` WHERE slug = ?")).
		WithArgs("frank-herbert", 1).
		WillReturnRows(rows)

	author, err := store.FindAuthorBySlug(context.Background(), "frank-herbert")

	require.NoError(t, err)
	require.NotNil(t, author)
	assert.Equal(t, uint(7), author.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreFindAuthorBySlugNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `authors` WHERE slug = ?")).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	author, err := store.FindAuthorBySlug(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreFindEditionByISBNPair(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "isbn13"}).
		AddRow(11, "Dune", "9780000000002")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `editions` WHERE isbn10 = ? OR isbn13 = ?")).
		WithArgs("0000000002", "9780000000002", 1).
		WillReturnRows(rows)

	isbn10, isbn13 := "0000000002", "9780000000002"
	edition, err := store.FindEditionByISBN(context.Background(), &isbn10, &isbn13)

	require.NoError(t, err)
	require.NotNil(t, edition)
	assert.Equal(t, uint(11), edition.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreFindEditionBySingleISBN(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `editions` WHERE isbn13 = ?")).
		WithArgs("9780000000002", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "isbn13"}))

	isbn13 := "9780000000002"
	edition, err := store.FindEditionByISBN(context.Background(), nil, &isbn13)

	require.NoError(t, err)
	assert.Nil(t, edition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreFindEditionWithoutISBNs(t *testing.T) {
	store, mock := newMockStore(t)

	edition, err := store.FindEditionByISBN(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Nil(t, edition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreUpdateBookEditions(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `editions` SET")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `books` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	active := uint(12)
	err := store.UpdateBookEditions(context.Background(), 1, []uint{11, 12}, &active)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreUpdateBookEditionsClearsDesignation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `books` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.UpdateBookEditions(context.Background(), 1, nil, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
