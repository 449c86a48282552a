package integrity

import (
	"match-canon/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/outputs", h.HandleOutputsCheck)
	group.Get("/players", h.HandlePlayersCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Outputs, Players).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if outputs, err := h.service.CheckOutputs(ctx); err != nil {
		report["outputs"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["outputs"] = outputs
	}

	if plr, err := h.service.CheckPlayers(ctx); err != nil {
		report["players"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["players"] = plr
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the input folder of every format and the output folder exist. Optionally creates missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleOutputsCheck compares raw logs with canonical records.
// @Summary Check Outputs
// @Description Lists matches awaiting conversion, records without a raw log, and misnamed objects.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.OutputReport "Outputs Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/outputs [get]
func (h *Handler) HandleOutputsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckOutputs(c.Context())
	if err != nil {
		l.Error("Outputs check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Outputs check completed",
		zap.Int("outputs", report.Outputs),
		zap.Int("pending", len(report.Pending)),
		zap.Int("orphans", len(report.Orphans)))
	return c.JSON(report)
}

// HandlePlayersCheck checks the players source.
// @Summary Check Players
// @Description Checks that the players file parses, or that the player_aliases table matches the expected schema.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.PlayersReport "Players Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/players [get]
func (h *Handler) HandlePlayersCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckPlayers(c.Context())
	if err != nil {
		l.Error("Players check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Players source has problems", zap.Strings("errors", report.Errors), zap.Strings("missing_columns", report.MissingColumns))
	}
	return c.JSON(report)
}
