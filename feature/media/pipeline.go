package media

import (
	"context"
	"net/http"
	"os"
	"strings"

	"catalog-importer/core/slug"
	"catalog-importer/core/storage"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Acquirer is the contract the import orchestrator depends on.
type Acquirer interface {
	// Acquire re-hosts the image at sourceURL and returns its media record.
	Acquire(ctx context.Context, sourceURL string) (*MediaAsset, error)
	// AcquirePortrait is Acquire with square portrait normalization applied.
	AcquirePortrait(ctx context.Context, sourceURL string) (*MediaAsset, error)
}

// Pipeline implements Acquirer against the object store and entity store.
type Pipeline struct {
	client     storage.Client
	bucket     string
	db         *gorm.DB
	cfg        Config
	logger     *zap.Logger
	httpClient *http.Client
}

// NewPipeline creates an image acquisition pipeline.
func NewPipeline(client storage.Client, bucket string, db *gorm.DB, cfg Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		client:     client,
		bucket:     bucket,
		db:         db,
		cfg:        cfg,
		logger:     logger,
		httpClient: newDownloadClient(cfg),
	}
}

// Acquire downloads, inspects, and re-hosts the image at sourceURL.
func (p *Pipeline) Acquire(ctx context.Context, sourceURL string) (*MediaAsset, error) {
	return p.acquire(ctx, sourceURL, false)
}

// AcquirePortrait is Acquire for author photos: the image is bounded to the
// configured square portrait size before upload.
func (p *Pipeline) AcquirePortrait(ctx context.Context, sourceURL string) (*MediaAsset, error) {
	return p.acquire(ctx, sourceURL, true)
}

func (p *Pipeline) acquire(ctx context.Context, sourceURL string, portrait bool) (*MediaAsset, error) {
	filePath, cleanup, err := p.download(ctx, sourceURL)
	if err != nil {
		return nil, &AcquisitionError{Stage: "download", URL: sourceURL, Err: err}
	}
	defer cleanup()

	if portrait {
		resized, resizedCleanup, err := p.normalizePortrait(filePath)
		if err != nil {
			return nil, &AcquisitionError{Stage: "inspect", URL: sourceURL, Err: err}
		}
		defer resizedCleanup()
		filePath = resized
	}

	info, err := inspectImage(filePath)
	if err != nil {
		return nil, &AcquisitionError{Stage: "inspect", URL: sourceURL, Err: err}
	}

	name := remoteFilename(sourceURL)
	asset := &MediaAsset{
		Name:        name,
		Hash:        slug.Make(strings.TrimSuffix(name, info.Ext)),
		Ext:         info.Ext,
		Mime:        info.Mime,
		Size:        info.Size,
		Width:       info.Width,
		Height:      info.Height,
		FolderPath:  p.cfg.Folder,
		CreatedByID: p.cfg.SystemActorID,
		UpdatedByID: p.cfg.SystemActorID,
	}

	if err := p.upload(ctx, asset, filePath); err != nil {
		return nil, &AcquisitionError{Stage: "upload", URL: sourceURL, Err: err}
	}

	p.logger.Debug("Acquired media asset",
		zap.String("source_url", sourceURL),
		zap.String("object_key", asset.ObjectKey()),
		zap.Uint("id", asset.ID),
	)
	return asset, nil
}

// normalizePortrait bounds the image to a PortraitSize square and re-encodes
// it as JPEG. Smaller images pass through at their original dimensions.
func (p *Pipeline) normalizePortrait(filePath string) (string, func(), error) {
	img, err := imaging.Open(filePath)
	if err != nil {
		return "", nil, err
	}

	size := p.cfg.PortraitSize
	if size <= 0 {
		size = 400
	}
	resized := imaging.Fit(img, size, size, imaging.Lanczos)

	out := filePath + "-portrait.jpg"
	if err := imaging.Save(resized, out); err != nil {
		return "", nil, err
	}
	return out, func() { _ = os.Remove(out) }, nil
}

// upload puts the bytes into the object store and records the MediaAsset.
// The upload is rolled back when the record cannot be created.
func (p *Pipeline) upload(ctx context.Context, asset *MediaAsset, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	key := asset.ObjectKey()
	if _, err := p.client.PutObject(ctx, p.bucket, key, f, asset.Size, minio.PutObjectOptions{
		ContentType: asset.Mime,
	}); err != nil {
		return err
	}

	if err := p.db.WithContext(ctx).Create(asset).Error; err != nil {
		if removeErr := p.client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{}); removeErr != nil {
			p.logger.Warn("Failed to roll back orphaned upload",
				zap.String("object_key", key),
				zap.Error(removeErr),
			)
		}
		return err
	}
	return nil
}
