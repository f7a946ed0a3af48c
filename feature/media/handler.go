package media

import (
	"catalog-importer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for media assets.
type Handler struct {
	auditor *Auditor
}

// NewHandler creates a new HTTP handler.
func NewHandler(auditor *Auditor) *Handler {
	return &Handler{auditor: auditor}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Get("/audit", h.HandleAudit)
}

// HandleAudit reconciles asset records against the bucket contents.
// @Summary Audit media assets
// @Description Compare every media asset record against the objects present in the bucket and report divergences.
// @Tags media
// @Accept json
// @Produce json
// @Success 200 {object} media.AuditReport "Audit report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/audit [get]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.auditor.logger, c)

	report, err := h.auditor.Audit(c.Context())
	if err != nil {
		l.Error("Media audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
