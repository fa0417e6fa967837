package integrity

import (
	"errors"

	"feature-catalog/core/logger"
	"feature-catalog/core/utils"
	"feature-catalog/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.ServerReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Catalog, Storage, Server). Disabled backends are reported as skipped.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Security ApiKeyAuth
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})
	report["catalog"] = h.service.CheckCatalog()

	if storageReport, err := h.service.CheckStorage(c.Context(), false); err != nil {
		report["storage"] = errorSection(err)
	} else {
		report["storage"] = storageReport
	}

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = errorSection(err)
	} else {
		report["server"] = srvReport
	}

	return c.JSON(report)
}

func errorSection(err error) map[string]interface{} {
	if errors.Is(err, ErrStorageDisabled) || errors.Is(err, ErrDatabaseDisabled) {
		return map[string]interface{}{"status": "skipped", "reason": err.Error()}
	}
	return map[string]interface{}{"status": "error", "error": err.Error()}
}

// HandleCatalogCheck validates the catalogue against the module table.
// @Summary Check Catalogue
// @Description Validates descriptors and lists descriptors without a module and modules without a descriptor.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogReport "Catalogue Report"
// @Security ApiKeyAuth
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	report := h.service.CheckCatalog()
	if report.Status != "ok" {
		logger.WithRayID(h.service.logger, c).Warn("Catalogue integrity problems detected",
			zap.Int("problems", len(report.Problems)),
			zap.Strings("unregistered", report.Unregistered),
			zap.Strings("orphaned", report.Orphaned))
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the bucket structure.
// @Summary Check Storage
// @Description Checks that the bucket and its catalog/ and reports/ folders exist. Optionally creates what is missing.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} StorageReport "Storage Report"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ParseBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.Context(), fix)
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["missing"] = report.Missing
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
	return c.JSON(report)
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks that the run history tables have every expected column.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 503 {object} map[string]string "Database disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if errors.Is(err, ErrDatabaseDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
