package convert

import (
	"errors"
	"strconv"

	"match-canon/core/logger"
	"match-canon/core/storage"
	"match-canon/feature/canon"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for conversions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the conversion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/convert")
	group.Post("/:format", h.HandleConvert)
	group.Post("/:format/batch", h.HandleBatch)
	group.Post("/:format/:id", h.HandleConvertStored)

	cross := app.Group("/crosscheck")
	cross.Get("/", h.HandleCrosscheck)
	cross.Get("/:id", h.HandleCrosscheckOne)
}

// HandleConvert converts the raw log sent as request body.
// @Summary Convert Log
// @Description Decodes a raw log of the given format into a canonical match. Nothing is stored.
// @Tags convert
// @Accept plain
// @Produce json
// @Param format path string true "Log format (mjlog, mjson)"
// @Param id query int false "Match id recorded in the result"
// @Success 200 {object} canon.Match "Canonical Match"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Undecodable Log"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /convert/{format} [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Params("format"))
	if err != nil {
		return h.fail(c, l, err)
	}
	id, err := queryID(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	match, err := h.service.Decode(format, id, c.Body())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(match)
}

// HandleConvertStored converts one stored raw log and writes its canonical record.
// @Summary Convert Stored Log
// @Description Converts input/{format}/{id} and writes output/{id}.json. Existing output is kept unless force is set.
// @Tags convert
// @Produce json
// @Param format path string true "Log format (mjlog, mjson)"
// @Param id path int true "Match id"
// @Param force query boolean false "Overwrite existing output"
// @Success 200 {object} map[string]interface{} "Outcome"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Log Not Found"
// @Failure 422 {object} map[string]string "Undecodable Log"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /convert/{format}/{id} [post]
func (h *Handler) HandleConvertStored(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Params("format"))
	if err != nil {
		return h.fail(c, l, err)
	}
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	outcome, err := h.service.ConvertStored(c.Context(), format, id, c.QueryBool("force"))
	if err != nil {
		return h.fail(c, l, err)
	}
	l.Info("Stored log converted", zap.Int64("match_id", id), zap.String("outcome", string(outcome)))
	return c.JSON(fiber.Map{
		"id":      id,
		"outcome": outcome,
		"output":  h.service.OutputKey(id),
	})
}

// HandleBatch converts every stored raw log of a format.
// @Summary Convert Batch
// @Description Converts all stored logs of the format. Failures are reported per match. This operation may take a long time.
// @Tags convert
// @Produce json
// @Param format path string true "Log format (mjlog, mjson)"
// @Param force query boolean false "Reconvert matches with existing output"
// @Success 200 {object} BatchReport "Batch Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /convert/{format}/batch [post]
func (h *Handler) HandleBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Params("format"))
	if err != nil {
		return h.fail(c, l, err)
	}

	l.Info("Starting batch conversion", zap.String("format", string(format)))
	report, err := h.service.ConvertBatch(c.Context(), format, c.QueryBool("force"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleCrosscheck compares all matches stored in both formats.
// @Summary Cross-check Formats
// @Description Decodes every match stored in both formats and lists the fields in which the canonical records differ.
// @Tags crosscheck
// @Produce json
// @Param refresh query boolean false "Ignore cached indices"
// @Success 200 {object} reconcile.Report "Cross-check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /crosscheck [get]
func (h *Handler) HandleCrosscheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Crosscheck(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, l, err)
	}
	l.Info("Cross-check completed",
		zap.Int("matches", report.Summary.TotalMatches),
		zap.Int("mismatches", report.Summary.Mismatches))
	return c.JSON(report)
}

// HandleCrosscheckOne compares the two stored logs of one match.
// @Summary Cross-check Match
// @Description Decodes one match from both formats and lists differing fields.
// @Tags crosscheck
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} reconcile.Result "Cross-check Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /crosscheck/{id} [get]
func (h *Handler) HandleCrosscheckOne(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := pathID(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	result, err := h.service.CrosscheckOne(c.Context(), id)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(result)
}

var errBadID = errors.New("match id must be a non-negative integer")

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, errBadID
	}
	return id, nil
}

func queryID(c *fiber.Ctx) (int64, error) {
	raw := c.Query("id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, errBadID
	}
	return id, nil
}

// fail maps err to a status code and writes the error body.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownFormat), errors.Is(err, errBadID):
		status = fiber.StatusBadRequest
	case canon.IsDecodeError(err):
		status = fiber.StatusUnprocessableEntity
	case storage.IsNotFound(err):
		status = fiber.StatusNotFound
	}

	if status == fiber.StatusInternalServerError {
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Warn("Request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
