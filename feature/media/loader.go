package media

import (
	"catalog-importer/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	pipeline *Pipeline
	auditor  *Auditor
	handler  *Handler
}

// NewFeature creates a new media feature.
func NewFeature(client storage.Client, bucket string, db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	pipeline := NewPipeline(client, bucket, db, cfg, logger)
	auditor := NewAuditor(client, bucket, db, cfg, logger)
	h := NewHandler(auditor)
	return &Feature{pipeline: pipeline, auditor: auditor, handler: h}
}

// Pipeline returns the acquisition pipeline for other features to consume.
func (f *Feature) Pipeline() *Pipeline {
	return f.pipeline
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "media"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
