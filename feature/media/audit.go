package media

import (
	"context"
	"sort"
	"strings"

	"catalog-importer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AuditReport summarizes the reconciliation of asset records against the
// objects actually present in the bucket.
type AuditReport struct {
	// Checked is the number of distinct keys seen across both sources.
	Checked int `json:"checked"`
	// Synced is the number of assets present in both sources.
	Synced int `json:"synced"`
	// MissingObjects lists object keys recorded in the database whose bytes
	// are gone from the bucket.
	MissingObjects []string `json:"missing_objects"`
	// OrphanedObjects lists bucket objects no asset record points to.
	OrphanedObjects []string `json:"orphaned_objects"`
}

// Clean reports whether both sources agree.
func (r *AuditReport) Clean() bool {
	return len(r.MissingObjects) == 0 && len(r.OrphanedObjects) == 0
}

// Auditor reconciles the media_assets table against the object store.
type Auditor struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	cfg    Config
	logger *zap.Logger
}

// NewAuditor creates a media auditor.
func NewAuditor(client storage.Client, bucket string, db *gorm.DB, cfg Config, logger *zap.Logger) *Auditor {
	return &Auditor{
		client: client,
		bucket: bucket,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Audit builds both indices concurrently, takes the union of keys, and
// reports every divergence. A single listing pass covers the whole folder;
// no per-object HEAD calls.
func (a *Auditor) Audit(ctx context.Context) (*AuditReport, error) {
	var (
		recorded map[string]bool
		stored   map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		index, err := a.loadRecordedKeys(gctx)
		if err != nil {
			return err
		}
		recorded = index
		return nil
	})
	g.Go(func() error {
		index, err := a.loadStoredKeys(gctx)
		if err != nil {
			return err
		}
		stored = index
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &AuditReport{
		MissingObjects:  []string{},
		OrphanedObjects: []string{},
	}
	for key := range recorded {
		if stored[key] {
			report.Synced++
		} else {
			report.MissingObjects = append(report.MissingObjects, key)
		}
	}
	for key := range stored {
		if !recorded[key] {
			report.OrphanedObjects = append(report.OrphanedObjects, key)
		}
	}
	report.Checked = report.Synced + len(report.MissingObjects) + len(report.OrphanedObjects)

	sort.Strings(report.MissingObjects)
	sort.Strings(report.OrphanedObjects)

	a.logger.Info("Media audit completed",
		zap.Int("checked", report.Checked),
		zap.Int("synced", report.Synced),
		zap.Int("missing", len(report.MissingObjects)),
		zap.Int("orphaned", len(report.OrphanedObjects)),
	)
	return report, nil
}

// loadRecordedKeys batch-loads every asset row and indexes it by object key.
func (a *Auditor) loadRecordedKeys(ctx context.Context) (map[string]bool, error) {
	var assets []MediaAsset
	if err := a.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, err
	}
	index := make(map[string]bool, len(assets))
	for i := range assets {
		index[assets[i].ObjectKey()] = true
	}
	return index, nil
}

// loadStoredKeys lists the asset folder in a single recursive pass.
func (a *Auditor) loadStoredKeys(ctx context.Context) (map[string]bool, error) {
	prefix := strings.Trim(a.cfg.Folder, "/")
	if prefix != "" {
		prefix += "/"
	}

	index := make(map[string]bool)
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		index[obj.Key] = true
	}
	return index, nil
}
