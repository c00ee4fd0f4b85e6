package http

import (
	"github.com/gofiber/fiber/v2"
	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
)

// AccessHandler expone el guard de navegación al frontend: dada una ruta de
// la app responde permitir o a dónde redirigir.
type AccessHandler struct {
	uc *appaccess.AccessUseCase
}

// NewAccessHandler construye el handler del guard.
func NewAccessHandler(uc *appaccess.AccessUseCase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

// Evaluate godoc
// @Summary      Evaluar acceso a una ruta de la app
// @Tags         access
// @Produce      json
// @Param        path  query  string  true  "pathname a evaluar, ej. /dashboard"
// @Success      200   {object}  dto.AccessDecisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/evaluate [get]
func (h *AccessHandler) Evaluate(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param path es requerido"})
	}
	return c.JSON(h.uc.EvaluateToDTO(GetUserID(c), path))
}
