package compare

import (
	"errors"
	"path"
	"strings"

	"decochanges/core/logger"
	"decochanges/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for export comparison.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/compare", h.HandleCompare)

	group := app.Group("/exports")
	group.Get("/", h.HandleListExports)
	group.Post("/", h.HandleUploadExport)
}

// HandleCompare compares two export objects from the bucket.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	oldObject := c.Query("old")
	newObject := c.Query("new")
	if oldObject == "" || newObject == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "both 'old' and 'new' query parameters are required",
		})
	}

	l.Info("Comparing exports",
		zap.String("old", oldObject),
		zap.String("new", newObject),
	)

	report, err := h.service.Compare(c.Context(), oldObject, newObject)
	if err != nil {
		var formatErr *snapshot.FormatError
		switch {
		case errors.As(err, &formatErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case isNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Comparison failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}

// HandleListExports lists export objects in the bucket.
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ListExports(c.Context())
	if err != nil {
		l.Error("Export listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"exports": names})
}

// HandleUploadExport uploads a new export file to the bucket.
func (h *Handler) HandleUploadExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	header, err := c.FormFile("export")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'export' is required",
		})
	}

	name := path.Base(header.Filename)
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".txt":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported export extension (expected .json or .txt)",
		})
	}

	file, err := header.Open()
	if err != nil {
		l.Error("Failed to open uploaded export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	if err := h.service.UploadExport(c.Context(), name, file, header.Size); err != nil {
		l.Error("Export upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Export uploaded", zap.String("name", name), zap.Int64("size", header.Size))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "uploaded",
		"name":   name,
	})
}

// isNotFound reports whether err is a missing-object error from storage.
func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
