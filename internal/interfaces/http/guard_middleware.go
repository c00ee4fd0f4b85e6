package http

import (
	"github.com/gofiber/fiber/v2"
	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// RequireSection protege un grupo de la API con el guard de navegación: la
// identidad autenticada debe poder ver la sección correspondiente de la app.
// La decisión se toma con perfil y suscripción frescos de la base de datos,
// igual que en el endpoint /api/access/evaluate.
func RequireSection(section string, uc *appaccess.AccessUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := uc.Evaluate(GetUserID(c), section)
		if !d.Allow {
			return c.Status(fiber.StatusForbidden).JSON(dto.AccessDecisionResponse{
				Path:     section,
				Allow:    false,
				Redirect: d.Redirect,
			})
		}
		return c.Next()
	}
}

// RequireRole restringe el grupo a los roles indicados. El rol se verifica
// contra la base de datos, no contra el claim del token: la sección puede ser
// visible para todo un tenant y aun así la operación quedar reservada a la
// administración.
func RequireRole(uc *appaccess.AccessUseCase, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := uc.ResolveSession(GetUserID(c))
		if s.Profile != nil {
			for _, role := range roles {
				if s.Profile.Role == role {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene permiso para esta operación"})
	}
}

// RequireSuperAdmin restringe el grupo a la plataforma.
func RequireSuperAdmin(uc *appaccess.AccessUseCase) fiber.Handler {
	return RequireRole(uc, entity.RoleSuperAdmin)
}
