package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"esignatures-go/esignatures"
	"esignatures-go/internal/delivery/http/validation"
	"esignatures-go/internal/domain/entity"
	"esignatures-go/internal/usecase"
)

type EsignHandler struct {
	usecase usecase.EsignUsecase
	logger  *zap.Logger
}

func NewEsignHandler(usecase usecase.EsignUsecase, logger *zap.Logger) *EsignHandler {
	return &EsignHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ListTemplates godoc
// @Summary List templates
// @Description List the templates the account can send
// @Tags templates
// @Produce json
// @Success 200 {object} entity.APIResponse
// @Failure 502 {object} entity.APIResponse
// @Router /api/v1/templates [get]
func (h *EsignHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.usecase.ListTemplates(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list templates", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(templates, "Templates retrieved successfully"))
}

// QueryTemplate godoc
// @Summary Get template
// @Description Get the details of a template, including its placeholder keys
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Failure 502 {object} entity.APIResponse
// @Router /api/v1/templates/{id} [get]
func (h *EsignHandler) QueryTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")

	template, err := h.usecase.QueryTemplate(c.UserContext(), templateID)
	if err != nil {
		h.logger.Error("Failed to query template", zap.String("template_id", templateID), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(template, "Template retrieved successfully"))
}

// SendContract godoc
// @Summary Send contract
// @Description Create a contract from a template and send it to the signers
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body entity.SendContractRequest true "Contract request"
// @Success 201 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 502 {object} entity.APIResponse
// @Router /api/v1/contracts [post]
func (h *EsignHandler) SendContract(c *fiber.Ctx) error {
	var req entity.SendContractRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("BAD_REQUEST", "Invalid request body"),
		)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("VALIDATION_ERROR", "Invalid contract request", validation.Messages(err)...),
		)
	}

	result, err := h.usecase.SendContract(c.UserContext(), &req)
	if err != nil {
		h.logger.Error("Failed to send contract", zap.String("template_id", req.TemplateID), zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(
		entity.NewSuccessResponse(result, "Contract sent successfully"),
	)
}

// QueryContract godoc
// @Summary Get contract
// @Description Get the current status of a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Failure 502 {object} entity.APIResponse
// @Router /api/v1/contracts/{id} [get]
func (h *EsignHandler) QueryContract(c *fiber.Ctx) error {
	contractID := c.Params("id")

	contract, err := h.usecase.QueryContract(c.UserContext(), contractID)
	if err != nil {
		h.logger.Error("Failed to query contract", zap.String("contract_id", contractID), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(entity.NewSuccessResponse(contract, "Contract retrieved successfully"))
}

// respondError maps client errors onto gateway responses
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *esignatures.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(
			entity.NewErrorResponse("VALIDATION_ERROR", validationErr.Error()),
		)
	}

	var apiErr *esignatures.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(
				entity.NewErrorResponse("NOT_FOUND", "Resource not found at eSignatures.io"),
			)
		}
		return c.Status(fiber.StatusBadGateway).JSON(
			entity.NewErrorResponse("UPSTREAM_ERROR", fmt.Sprintf("eSignatures.io returned status %d", apiErr.StatusCode)),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		entity.NewErrorResponse("INTERNAL_ERROR", "Unexpected error calling eSignatures.io"),
	)
}
