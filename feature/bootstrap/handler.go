package bootstrap

import (
	"errors"

	"feature-catalog/core/catalog"
	"feature-catalog/core/logger"
	"feature-catalog/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for loader runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bootstrap routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bootstrap")
	group.Get("/", h.HandleLastReport)
	group.Post("/run", h.HandleRun)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
}

// HandleLastReport returns the latest loader report.
// @Summary Latest Loader Report
// @Description Returns the report of the most recent module loading run of this process.
// @Tags bootstrap
// @Produce json
// @Success 200 {object} loader.Report "Loader Report"
// @Failure 404 {object} map[string]string "No run yet"
// @Security ApiKeyAuth
// @Router /bootstrap [get]
func (h *Handler) HandleLastReport(c *fiber.Ctx) error {
	report, ok := h.service.Last()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no run yet"})
	}
	return c.JSON(report)
}

// HandleRun loads the catalogue modules again.
// @Summary Run Loader
// @Description Loads and initialises every catalogue module (optionally filtered) and returns the report. Module failures are reported, never returned as errors.
// @Tags bootstrap
// @Produce json
// @Param category query string false "Only this category"
// @Param priority query string false "Only this priority"
// @Success 200 {object} loader.Report "Loader Report"
// @Security ApiKeyAuth
// @Router /bootstrap/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering module loading run")

	report := h.service.Run(c.Context(), catalog.Filter{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	})

	if report.Failed > 0 {
		l.Warn("Module loading run finished with failures",
			zap.String("run_id", report.RunID),
			zap.Int("failed", report.Failed))
	}
	return c.JSON(report)
}

// HandleListRuns lists persisted runs.
// @Summary List Runs
// @Description Lists persisted loader runs, newest first.
// @Tags bootstrap
// @Produce json
// @Param limit query int false "Maximum runs (1-100, default 20)"
// @Success 200 {array} models.Run "Runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Security ApiKeyAuth
// @Router /bootstrap/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	limit := utils.Clamp(utils.ParseInt(c.Query("limit"), 20), 1, 100)

	runs, err := h.service.Runs(c.Context(), limit)
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetRun returns one run.
// @Summary Get Run
// @Description Returns a run's report from memory, the history database or the storage archive.
// @Tags bootstrap
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} loader.Report "Loader Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /bootstrap/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	report, err := h.service.Report(c.Context(), c.Params("id"))
	if errors.Is(err, ErrRunNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Getting run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
