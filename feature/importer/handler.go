package importer

import (
	"errors"

	"catalog-importer/core/logger"
	"catalog-importer/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/import", h.HandleImport)
}

// HandleImport ingests one book graph from the external catalog.
// @Summary Import a book
// @Description Resolve a book by ISBN or edition identifier and ingest its work, authors, subjects, and editions.
// @Tags import
// @Accept json
// @Produce json
// @Param isbn query string false "ISBN-10 or ISBN-13"
// @Param olid query string false "Edition identifier (e.g. 'OL7353617M')"
// @Success 200 {object} importer.Result "Import result"
// @Failure 400 {object} map[string]string "Missing identifier or catalog resolution failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	isbn := c.Query("isbn")
	olid := c.Query("olid")
	l := logger.WithRayID(h.service.logger, c)

	if isbn == "" && olid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "either isbn or olid query parameter is required",
		})
	}

	var (
		res *Result
		err error
	)
	if isbn != "" {
		l.Info("Import requested", zap.String("isbn", isbn))
		res, err = h.service.ImportByISBN(c.Context(), isbn)
	} else {
		l.Info("Import requested", zap.String("olid", olid))
		res, err = h.service.ImportByOLID(c.Context(), olid)
	}
	if err != nil {
		l.Error("Import failed", zap.Error(err))
		// A catalog resolution failure means the caller named something the
		// source cannot resolve, so it surfaces as a client error.
		status := fiber.StatusInternalServerError
		var uerr *catalog.UpstreamError
		if errors.As(err, &uerr) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Import completed",
		zap.String("book", res.Book.Slug),
		zap.Int("editions", len(res.Editions)),
	)
	return c.JSON(res)
}
