package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/usecase"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
)

// JournalHandler maneja asientos contables manuales y su consulta.
type JournalHandler struct {
	uc *usecase.JournalUseCase
}

// NewJournalHandler construye el handler del libro diario.
func NewJournalHandler(uc *usecase.JournalUseCase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un asiento manual balanceado
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJournalEntryRequest  true  "date, description, lines"
// @Success      201   {object}  dto.JournalEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/journal [post]
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJournalEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el asiento necesita al menos una línea"})
	}
	out, err := h.uc.CreateManualEntry(c.Context(), GetOrganizationID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnbalancedEntry) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNBALANCED", Message: "la suma de débitos debe igualar la de créditos"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "una de las cuentas referenciadas no existe"})
		}
		if errors.Is(err, domain.ErrParentAccount) || errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ACCOUNT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asientos del libro diario
// @Tags         journal
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.JournalEntryResponse
// @Router       /api/journal [get]
func (h *JournalHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(GetOrganizationID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
