package access

import (
	"strings"
	"time"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// Profile es la vista del perfil de usuario que necesita el guard.
type Profile struct {
	Role                string
	OrganizationID      string
	Status              string
	ForcePasswordChange bool
}

// Subscription es el estado contractual de la organización del usuario.
// Solo se adjunta para roles distintos de SuperAdmin.
type Subscription struct {
	ContractStatus   string
	SubscriptionEnds time.Time
}

// Session es el estado efímero contra el que se decide cada navegación.
// Se reconstruye desde cero en cada evaluación; nunca se persiste.
type Session struct {
	Identity     string // handle opaco del proveedor de auth; vacío = anónimo
	Profile      *Profile
	Organization *Subscription
}

// Decision resultado del guard: permitir la ruta o redirigir a una página terminal.
type Decision struct {
	Allow    bool
	Redirect string // destino cuando Allow es false
}

func allowed() Decision {
	return Decision{Allow: true}
}

func redirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Evaluate decide si la sesión puede ver pathname, usando la hora actual.
func Evaluate(s Session, pathname string) Decision {
	return EvaluateAt(s, pathname, time.Now())
}

// EvaluateAt es la función de decisión del guard de navegación. Las reglas se
// evalúan en orden estricto y gana la primera que aplique; el orden es parte
// del contrato (una cuenta cancelada debe pesar más que la suscripción vencida,
// y ambas más que la tabla de rutas por rol).
//
//  1. Sin identidad: solo rutas públicas y /o/*.
//  2. Identidad sin perfil resuelto: permitir (estado transitorio, la siguiente
//     evaluación decide con datos completos).
//  3. Cuenta cancelada: retener en /cancelled-account.
//  4. Rol en espera o sin asignar: retener en /pending-approval.
//  5. Suscripción vencida o contrato cancelado (nunca para SuperAdmin):
//     retener en /subscription-expired.
//  6. Usuario autenticado en ruta pública: enviar al dashboard.
//  7. Cambio de contraseña forzado: solo /settings.
//  8. Tabla de rutas por rol (match por prefijo); sin match, al dashboard.
func EvaluateAt(s Session, pathname string, now time.Time) Decision {
	if s.Identity == "" {
		if PublicRoutes[pathname] || strings.HasPrefix(pathname, OrgPublicPrefix) {
			return allowed()
		}
		return redirectTo(RouteLogin)
	}

	if s.Profile == nil {
		return allowed()
	}

	if s.Profile.Status == entity.UserStatusCancelled {
		if pathname == RouteCancelledAccount {
			return allowed()
		}
		return redirectTo(RouteCancelledAccount)
	}

	if s.Profile.Role == entity.RoleEnEspera || s.Profile.Role == entity.RoleSinAsignar {
		if pathname == RoutePendingApproval {
			return allowed()
		}
		return redirectTo(RoutePendingApproval)
	}

	if s.Organization != nil && s.Profile.Role != entity.RoleSuperAdmin {
		expired := subscriptionLapsed(s.Organization.SubscriptionEnds, now)
		cancelled := s.Organization.ContractStatus == entity.ContractCancelled
		if expired || cancelled {
			if pathname == RouteSubscriptionExpired {
				return allowed()
			}
			return redirectTo(RouteSubscriptionExpired)
		}
	}

	if PublicRoutes[pathname] {
		return redirectTo(RouteDashboard)
	}

	if s.Profile.ForcePasswordChange && !strings.HasPrefix(pathname, RouteSettings) {
		return redirectTo(RouteSettings)
	}

	for _, prefix := range RoutesByRole[s.Profile.Role] {
		if strings.HasPrefix(pathname, prefix) {
			return allowed()
		}
	}
	// Nunca redirigir a la ruta en la que ya se está.
	if pathname == RouteDashboard {
		return allowed()
	}
	return redirectTo(RouteDashboard)
}

// subscriptionLapsed compara la fecha de fin contra hoy, ambas normalizadas a
// medianoche local. La fecha almacenada es solo-fecha interpretada como
// medianoche UTC; se reconstruye en la zona local para no correrse un día.
func subscriptionLapsed(ends time.Time, now time.Time) bool {
	if ends.IsZero() {
		return false
	}
	ey, em, ed := ends.UTC().Date()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, now.Location())
	ty, tm, td := now.Date()
	today := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())
	return end.Before(today)
}
