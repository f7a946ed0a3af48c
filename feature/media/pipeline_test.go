package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-importer/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, sqlMock
}

// pngBytes renders a width x height PNG in memory.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func serveImage(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestPipeline(t *testing.T) (*Pipeline, *mocks.Client, sqlmock.Sqlmock) {
	client := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	cfg := Config{Folder: "/", PortraitSize: 400, SystemActorID: 1, TimeoutSeconds: 5}
	return NewPipeline(client, "media", db, cfg, zap.NewNop()), client, sqlMock
}

func TestAcquire(t *testing.T) {
	srv := serveImage(t, pngBytes(t, 60, 90))
	pipeline, client, sqlMock := newTestPipeline(t)

	client.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `media_assets`").WillReturnResult(sqlmock.NewResult(7, 1))
	sqlMock.ExpectCommit()

	asset, err := pipeline.Acquire(context.Background(), srv.URL+"/covers/8739161-L.png")
	require.NoError(t, err)

	assert.Equal(t, uint(7), asset.ID)
	assert.Equal(t, "8739161-L.png", asset.Name)
	assert.Equal(t, "image/png", asset.Mime)
	assert.Equal(t, ".png", asset.Ext)
	assert.Equal(t, 60, asset.Width)
	assert.Equal(t, 90, asset.Height)
	assert.Equal(t, uint(1), asset.CreatedByID)
	assert.Equal(t, uint(1), asset.UpdatedByID)
	assert.NotZero(t, asset.Size)
	client.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAcquirePortraitBoundsDimensions(t *testing.T) {
	srv := serveImage(t, pngBytes(t, 800, 600))
	pipeline, client, sqlMock := newTestPipeline(t)

	client.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `media_assets`").WillReturnResult(sqlmock.NewResult(3, 1))
	sqlMock.ExpectCommit()

	asset, err := pipeline.AcquirePortrait(context.Background(), srv.URL+"/a/olid/OL34184A.jpg")
	require.NoError(t, err)

	assert.LessOrEqual(t, asset.Width, 400)
	assert.LessOrEqual(t, asset.Height, 400)
	// portraits are re-encoded as JPEG
	assert.Equal(t, "image/jpeg", asset.Mime)
}

func TestAcquireDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	pipeline, client, _ := newTestPipeline(t)

	_, err := pipeline.Acquire(context.Background(), srv.URL+"/missing.jpg")
	var acq *AcquisitionError
	require.ErrorAs(t, err, &acq)
	assert.Equal(t, "download", acq.Stage)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAcquireRejectsNonImage(t *testing.T) {
	srv := serveImage(t, []byte("<!doctype html><html></html>"))
	pipeline, _, _ := newTestPipeline(t)

	_, err := pipeline.Acquire(context.Background(), srv.URL+"/cover.jpg")
	var acq *AcquisitionError
	require.ErrorAs(t, err, &acq)
	assert.Equal(t, "inspect", acq.Stage)
}

func TestAcquireRollsBackOrphanedUpload(t *testing.T) {
	srv := serveImage(t, pngBytes(t, 10, 10))
	pipeline, client, sqlMock := newTestPipeline(t)

	client.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("RemoveObject", mock.Anything, "media", mock.Anything, mock.Anything).Return(nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `media_assets`").WillReturnError(errors.New("connection lost"))
	sqlMock.ExpectRollback()

	_, err := pipeline.Acquire(context.Background(), srv.URL+"/cover.png")
	var acq *AcquisitionError
	require.ErrorAs(t, err, &acq)
	assert.Equal(t, "upload", acq.Stage)
	client.AssertCalled(t, "RemoveObject", mock.Anything, "media", mock.Anything, mock.Anything)
}

func TestRemoteFilename(t *testing.T) {
	assert.Equal(t, "8739161-L.jpg", remoteFilename("https://covers.example.com/b/id/8739161-L.jpg"))
	assert.Equal(t, "image", remoteFilename("https://covers.example.com/"))
	assert.Equal(t, "we_ird_name.png", remoteFilename("https://host/we%20ird%21name.png"))
}
