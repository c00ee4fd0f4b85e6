package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/usecase"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
)

// AccountHandler maneja el plan de cuentas y la configuración contable.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cuenta del plan contable
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "code, name, type"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetOrganizationID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una cuenta con ese código"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARENT_NOT_FOUND", Message: "la cuenta padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el plan de cuentas
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetOrganizationID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una cuenta sin movimientos ni subcuentas
// @Tags         accounts
// @Produce      json
// @Param        id  path  string  true  "account id"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(GetOrganizationID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta pertenece a otra organización"})
		}
		if errors.Is(err, domain.ErrAccountInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_IN_USE", Message: "la cuenta tiene movimientos o subcuentas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSettings godoc
// @Summary      Obtener la configuración contable
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  dto.AccountingSettingsResponse
// @Router       /api/accounting-settings [get]
func (h *AccountHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetOrganizationID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Mapear los cinco roles contables a cuentas
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccountingSettingsRequest  true  "cuentas por rol"
// @Success      200   {object}  dto.AccountingSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounting-settings [put]
func (h *AccountHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.AccountingSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSettings(GetOrganizationID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "una de las cuentas referenciadas no existe"})
		}
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrParentAccount) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
