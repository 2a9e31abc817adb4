package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/domain/repository"
)

type LogHandler struct {
	logRepo repository.APILogRepository
	logger  *zap.Logger
}

func NewLogHandler(logRepo repository.APILogRepository, logger *zap.Logger) *LogHandler {
	return &LogHandler{
		logRepo: logRepo,
		logger:  logger,
	}
}

// GetLogs godoc
// @Summary Recent API call logs
// @Tags logs
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} entity.APIResponse
// @Failure 503 {object} entity.APIResponse
// @Router /api/v1/logs [get]
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.logRepo.FindRecent(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}

// SearchLogs godoc
// @Summary Search API call logs
// @Tags logs
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 503 {object} entity.APIResponse
// @Router /api/v1/logs/search [get]
func (h *LogHandler) SearchLogs(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Query parameter q is required"),
		)
	}

	logs, err := h.logRepo.Search(c.UserContext(), q, c.QueryInt("limit", 0))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}

func (h *LogHandler) respond(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrStorageDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			entity.NewErrorResponse("STORAGE_DISABLED", err.Error()),
		)
	}

	h.logger.Error("Failed to read API logs", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(
		entity.NewErrorResponse("INTERNAL_ERROR", "Failed to read API logs"),
	)
}
