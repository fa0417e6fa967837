package catalog

import (
	"errors"

	catalogcore "feature-catalog/core/catalog"
	"feature-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalogue.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalogue routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleCatalog)
	group.Get("/categories", h.HandleCategories)
	group.Get("/categories/:category", h.HandleCategory)
	group.Get("/features/:id", h.HandleFeature)
	group.Get("/search", h.HandleSearch)
	group.Get("/stats", h.HandleStats)
	group.Post("/export", h.HandleExport)
}

// HandleCatalog returns the whole catalogue.
// @Summary Get Catalogue
// @Description Returns every category with its feature descriptors in declaration order.
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Category "Categories"
// @Security ApiKeyAuth
// @Router /catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.registry.Groups())
}

// HandleCategories lists category names.
// @Summary List Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} string "Category names"
// @Security ApiKeyAuth
// @Router /catalog/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.registry.Categories())
}

// HandleCategory returns the descriptors of one category.
// @Summary Get Category
// @Tags catalog
// @Produce json
// @Param category path string true "Category name (e.g. 'editing')"
// @Success 200 {array} catalog.Descriptor "Descriptors"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /catalog/categories/{category} [get]
func (h *Handler) HandleCategory(c *fiber.Ctx) error {
	features, ok := h.service.registry.Category(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
	}
	return c.JSON(features)
}

// HandleFeature returns one descriptor.
// @Summary Get Feature
// @Tags catalog
// @Produce json
// @Param id path string true "Descriptor ID (e.g. 'US-0101')"
// @Success 200 {object} catalog.Descriptor "Descriptor"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /catalog/features/{id} [get]
func (h *Handler) HandleFeature(c *fiber.Ctx) error {
	d, ok := h.service.registry.Lookup(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "feature not found"})
	}
	return c.JSON(d)
}

// HandleSearch filters descriptors.
// @Summary Search Features
// @Description All given parameters must match. q is a case-insensitive substring of title, want or soThat.
// @Tags catalog
// @Produce json
// @Param category query string false "Category"
// @Param priority query string false "Priority"
// @Param platform query string false "Platform"
// @Param userType query string false "User type"
// @Param q query string false "Free text"
// @Success 200 {array} catalog.Descriptor "Descriptors"
// @Security ApiKeyAuth
// @Router /catalog/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	features := h.service.registry.Filter(catalogcore.Filter{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Platform: c.Query("platform"),
		UserType: c.Query("userType"),
		Query:    c.Query("q"),
	})
	if features == nil {
		features = []catalogcore.Descriptor{}
	}
	return c.JSON(features)
}

// HandleStats returns catalogue counts.
// @Summary Catalogue Stats
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Stats "Stats"
// @Security ApiKeyAuth
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.registry.Stats())
}

// HandleExport uploads the catalogue to storage.
// @Summary Export Catalogue
// @Description Uploads catalog/catalog.json and catalog/catalog.yaml to the configured bucket.
// @Tags catalog
// @Produce json
// @Success 200 {object} ExportResult "Export Result"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /catalog/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Export(c.Context())
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Catalogue export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
