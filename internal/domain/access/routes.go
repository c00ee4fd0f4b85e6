package access

import "github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"

// Rutas terminales del guard.
const (
	RouteLogin               = "/login"
	RouteDashboard           = "/dashboard"
	RouteSettings            = "/settings"
	RoutePendingApproval     = "/pending-approval"
	RouteCancelledAccount    = "/cancelled-account"
	RouteSubscriptionExpired = "/subscription-expired"
)

// OrgPublicPrefix prefijo de las páginas públicas por organización (/o/<slug>).
const OrgPublicPrefix = "/o/"

// PublicRoutes páginas accesibles sin sesión (match exacto).
var PublicRoutes = map[string]bool{
	"/":                      true,
	RouteLogin:               true,
	"/signup":                true,
	RoutePendingApproval:     true,
	RouteCancelledAccount:    true,
	RouteSubscriptionExpired: true,
}

// RoutesByRole tabla estática de prefijos de ruta permitidos por rol.
// Una ruta está autorizada si empieza por alguno de los prefijos del rol.
var RoutesByRole = map[string][]string{
	entity.RoleSuperAdmin: {
		RouteDashboard, "/admin", "/customers", "/sales", RouteSettings, "/hr",
		"/academics", "/finance", "/inventory", "/reports", "/student-portal",
		"/communications", "/caficultores", "/analysis", "/odontology",
	},
	entity.RoleAdmin: {
		RouteDashboard, "/customers", "/sales", RouteSettings, "/hr", "/academics",
		"/finance", "/inventory", "/reports", "/communications", "/odontology",
	},
	entity.RoleVentas:     {RouteDashboard, "/customers", "/sales", RouteSettings, "/communications"},
	entity.RoleAcademico:  {RouteDashboard, "/academics", RouteSettings},
	entity.RoleRRHH:       {RouteDashboard, "/hr", RouteSettings},
	entity.RoleFinanzas:   {RouteDashboard, "/finance", RouteSettings},
	entity.RoleEstudiante: {RouteDashboard, RouteSettings, "/student-portal"},
	entity.RoleEmpleado:   {RouteDashboard, RouteSettings},
	entity.RoleMarketing:  {RouteDashboard, RouteSettings, "/communications"},
	entity.RoleSoporte:    {RouteDashboard, RouteSettings},
	entity.RoleEnEspera:   {RoutePendingApproval},
	entity.RoleSinAsignar: {RoutePendingApproval},
	entity.RoleCancelled:  {RouteCancelledAccount},
}
