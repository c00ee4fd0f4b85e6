package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// Zona horaria de referencia para los tests (UTC-5, Colombia).
var bogota = time.FixedZone("America/Bogota", -5*3600)

// ahora: un instante fijo para que los tests sean deterministas.
var ahora = time.Date(2026, 3, 10, 15, 30, 0, 0, bogota)

// sesionActiva construye una sesión autenticada con perfil activo y
// suscripción vigente, modificable por los tests.
func sesionActiva(role string) access.Session {
	return access.Session{
		Identity: "uid-123",
		Profile: &access.Profile{
			Role:           role,
			OrganizationID: "org-1",
			Status:         entity.UserStatusActive,
		},
		Organization: &access.Subscription{
			ContractStatus:   entity.ContractActive,
			SubscriptionEnds: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 1: sesión anónima
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_AnonimoEnRutaPublica_Permite(t *testing.T) {
	anon := access.Session{}
	for _, path := range []string{"/", "/login", "/signup", "/pending-approval", "/cancelled-account", "/subscription-expired"} {
		d := access.EvaluateAt(anon, path, ahora)
		assert.True(t, d.Allow, "anónimo debe poder ver %s", path)
	}
}

func TestGuard_AnonimoEnRutaOrganizacion_Permite(t *testing.T) {
	d := access.EvaluateAt(access.Session{}, "/o/acme-corp", ahora)
	assert.True(t, d.Allow, "las páginas /o/* son públicas para anónimos")
}

func TestGuard_AnonimoEnRutaProtegida_RedirigeALogin(t *testing.T) {
	for _, path := range []string{"/dashboard", "/finance", "/sales/pos", "/settings"} {
		d := access.EvaluateAt(access.Session{}, path, ahora)
		assert.False(t, d.Allow)
		assert.Equal(t, access.RouteLogin, d.Redirect, "anónimo en %s debe ir a /login", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 2: perfil sin resolver (estado transitorio de carga)
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_PerfilSinResolver_PermiteSinRedirigir(t *testing.T) {
	s := access.Session{Identity: "uid-123"} // perfil aún cargando
	d := access.EvaluateAt(s, "/finance", ahora)
	assert.True(t, d.Allow, "mientras el perfil carga no se decide redirección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 3: cuenta cancelada (retención dura, pesa más que el rol)
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_CuentaCancelada_RedirigeSiempre(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	s.Profile.Status = entity.UserStatusCancelled

	for _, path := range []string{"/dashboard", "/finance", "/settings", "/login"} {
		d := access.EvaluateAt(s, path, ahora)
		assert.False(t, d.Allow, "cuenta cancelada no debe ver %s", path)
		assert.Equal(t, access.RouteCancelledAccount, d.Redirect)
	}
}

func TestGuard_CuentaCancelada_NoGeneraBucleDeRedireccion(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	s.Profile.Status = entity.UserStatusCancelled
	d := access.EvaluateAt(s, access.RouteCancelledAccount, ahora)
	assert.True(t, d.Allow, "ya está en la página destino, no se redirige")
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 4: roles en espera / sin asignar
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_RolPendiente_RetenidoEnPendingApproval(t *testing.T) {
	for _, role := range []string{entity.RoleEnEspera, entity.RoleSinAsignar} {
		s := sesionActiva(role)
		d := access.EvaluateAt(s, "/dashboard", ahora)
		assert.False(t, d.Allow)
		assert.Equal(t, access.RoutePendingApproval, d.Redirect, "rol %s debe quedar retenido", role)

		d = access.EvaluateAt(s, access.RoutePendingApproval, ahora)
		assert.True(t, d.Allow, "rol %s puede ver su página de espera", role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 5: suscripción vencida / contrato cancelado
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SuscripcionVencida_RedirigeAunConRolPermitido(t *testing.T) {
	s := sesionActiva(entity.RoleFinanzas)
	s.Organization.SubscriptionEnds = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	d := access.EvaluateAt(s, "/finance", ahora)
	assert.False(t, d.Allow, "la tabla de rutas permitiría /finance, pero la suscripción venció")
	assert.Equal(t, access.RouteSubscriptionExpired, d.Redirect)
}

func TestGuard_ContratoCancelado_Redirige(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	s.Organization.ContractStatus = entity.ContractCancelled

	d := access.EvaluateAt(s, "/dashboard", ahora)
	assert.Equal(t, access.RouteSubscriptionExpired, d.Redirect)
}

func TestGuard_SuscripcionVencida_SinBucle(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	s.Organization.ContractStatus = entity.ContractCancelled
	d := access.EvaluateAt(s, access.RouteSubscriptionExpired, ahora)
	assert.True(t, d.Allow)
}

func TestGuard_SuperAdmin_IgnoraSuscripcionVencida(t *testing.T) {
	s := sesionActiva(entity.RoleSuperAdmin)
	s.Organization.ContractStatus = entity.ContractCancelled
	s.Organization.SubscriptionEnds = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	d := access.EvaluateAt(s, "/admin", ahora)
	assert.True(t, d.Allow, "SuperAdmin administra tenants: nunca lo bloquea una suscripción")
}

// La fecha fin se guarda como medianoche UTC; comparada ingenuamente contra un
// timestamp local se correría un día. Ambos lados se normalizan a medianoche local.
func TestGuard_VencimientoNormalizadoAMedianocheLocal(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	// Vence "hoy" (2026-03-10 almacenado como medianoche UTC).
	s.Organization.SubscriptionEnds = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// El mismo día por la tarde, hora local: todavía no vencida.
	d := access.EvaluateAt(s, "/dashboard", ahora)
	assert.True(t, d.Allow, "el día de vencimiento aún cuenta como vigente")

	// Pasada la medianoche local del día siguiente: vencida.
	madrugada := time.Date(2026, 3, 11, 0, 1, 0, 0, bogota)
	d = access.EvaluateAt(s, "/dashboard", madrugada)
	assert.Equal(t, access.RouteSubscriptionExpired, d.Redirect)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 6: autenticado en ruta pública
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_AutenticadoEnRutaPublica_VaAlDashboard(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	for _, path := range []string{"/", "/login", "/signup"} {
		d := access.EvaluateAt(s, path, ahora)
		assert.False(t, d.Allow)
		assert.Equal(t, access.RouteDashboard, d.Redirect, "usuario logueado no ve %s", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 7: cambio de contraseña forzado (retención blanda)
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_CambioPasswordForzado_SoloSettings(t *testing.T) {
	s := sesionActiva(entity.RoleAdmin)
	s.Profile.ForcePasswordChange = true

	d := access.EvaluateAt(s, "/customers", ahora)
	assert.Equal(t, access.RouteSettings, d.Redirect)

	d = access.EvaluateAt(s, "/settings", ahora)
	assert.True(t, d.Allow, "/settings es la ruta esencial exenta")

	d = access.EvaluateAt(s, "/settings/security", ahora)
	assert.True(t, d.Allow, "las pestañas bajo /settings siguen accesibles")
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla 8: tabla de rutas por rol (match por prefijo)
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_TablaDeRoles(t *testing.T) {
	cases := []struct {
		role  string
		path  string
		allow bool
	}{
		{entity.RoleVentas, "/sales/pos", true},
		{entity.RoleVentas, "/customers", true},
		{entity.RoleVentas, "/inventory", false}, // Ventas no tiene inventario
		{entity.RoleVentas, "/finance", false},
		{entity.RoleFinanzas, "/finance/accounts", true},
		{entity.RoleFinanzas, "/sales", false},
		{entity.RoleAcademico, "/academics/grades", true},
		{entity.RoleAcademico, "/hr", false},
		{entity.RoleRRHH, "/hr/payroll", true},
		{entity.RoleEstudiante, "/student-portal", true},
		{entity.RoleEstudiante, "/academics", false},
		{entity.RoleEmpleado, "/dashboard", true},
		{entity.RoleEmpleado, "/reports", false},
		{entity.RoleMarketing, "/communications", true},
		{entity.RoleSoporte, "/communications", false},
		{entity.RoleAdmin, "/odontology/records", true},
		{entity.RoleAdmin, "/admin", false}, // /admin es solo SuperAdmin
		{entity.RoleSuperAdmin, "/admin/tenants", true},
		{entity.RoleSuperAdmin, "/caficultores", true},
	}
	for _, tc := range cases {
		s := sesionActiva(tc.role)
		d := access.EvaluateAt(s, tc.path, ahora)
		if tc.allow {
			assert.True(t, d.Allow, "%s debería poder ver %s", tc.role, tc.path)
		} else {
			assert.False(t, d.Allow, "%s no debería poder ver %s", tc.role, tc.path)
			assert.Equal(t, access.RouteDashboard, d.Redirect)
		}
	}
}

func TestGuard_RolDesconocido_SiempreAlDashboard(t *testing.T) {
	// No debería ocurrir con el enum cerrado, pero el guard degrada al
	// conjunto vacío de rutas permitidas.
	s := sesionActiva("RolInexistente")
	d := access.EvaluateAt(s, "/finance", ahora)
	assert.Equal(t, access.RouteDashboard, d.Redirect)
}

func TestGuard_FallbackEnDashboard_NoGeneraBucle(t *testing.T) {
	// Un rol sin /dashboard en su tabla, parado en /dashboard: nunca
	// redirigir a la ruta actual.
	s := sesionActiva("RolInexistente")
	d := access.EvaluateAt(s, access.RouteDashboard, ahora)
	assert.True(t, d.Allow)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_EvaluacionIdempotente(t *testing.T) {
	s := sesionActiva(entity.RoleVentas)
	primera := access.EvaluateAt(s, "/inventory", ahora)
	segunda := access.EvaluateAt(s, "/inventory", ahora)
	assert.Equal(t, primera, segunda, "misma sesión y ruta deben producir la misma decisión")
}
