package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	apphttp "github.com/vallrack/DigitalCenterTwo-sub001/internal/interfaces/http"
	pkgjwt "github.com/vallrack/DigitalCenterTwo-sub001/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrgID     = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "digital-center-test"
	testExpMin    = 60
)

// fakeUserRepo devuelve siempre el mismo usuario (el guard re-lee el perfil
// desde la base de datos, no confía en el claim del token).
type fakeUserRepo struct {
	user *entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	return nil
}

func (f *fakeUserRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	org *entity.Organization
}

func (f *fakeOrgRepo) Create(o *entity.Organization) error {
	return nil
}

func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	if f.org != nil && f.org.ID == id {
		return f.org, nil
	}
	return nil, nil
}

func (f *fakeOrgRepo) GetBySlug(slug string) (*entity.Organization, error) {
	return nil, nil
}

func (f *fakeOrgRepo) Update(o *entity.Organization) error {
	return nil
}

func (f *fakeOrgRepo) List(limit, offset int) ([]*entity.Organization, error) {
	return nil, nil
}

func (f *fakeOrgRepo) ExpireLapsed(before time.Time) ([]string, error) {
	return nil, nil
}

// buildGuardedApp construye una app Fiber con AuthMiddleware + RequireSection
// para la sección indicada, con un usuario de rol dado y suscripción vigente.
func buildGuardedApp(role, section string) *fiber.App {
	users := &fakeUserRepo{user: &entity.User{
		ID:             testUserID,
		OrganizationID: testOrgID,
		Role:           role,
		Status:         entity.UserStatusActive,
	}}
	orgs := &fakeOrgRepo{org: &entity.Organization{
		ID:               testOrgID,
		ContractStatus:   entity.ContractActive,
		SubscriptionEnds: time.Now().AddDate(1, 0, 0),
	}}
	accessUC := appaccess.NewAccessUseCase(users, orgs)

	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSection(section, accessUC),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// tokenForUser genera un JWT para el usuario de prueba.
func tokenForUser(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSection — el guard como middleware de la API
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Ventas puede operar la sección /sales → HTTP 200.
func TestRequireSection_VentasAccedeSales(t *testing.T) {
	app := buildGuardedApp(entity.RoleVentas, "/sales")
	resp := doRequest(t, app, tokenForUser(t, entity.RoleVentas))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Ventas debe poder operar la sección /sales")
}

// Caso 2: Ventas bloqueado en la sección /finance → HTTP 403 con redirect.
func TestRequireSection_VentasBloqueadoEnFinance(t *testing.T) {
	app := buildGuardedApp(entity.RoleVentas, "/finance")
	resp := doRequest(t, app, tokenForUser(t, entity.RoleVentas))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Ventas no debe poder operar la sección /finance")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["allow"])
	assert.Equal(t, "/dashboard", body["redirect"],
		"el deny debe indicar la página a la que redirigir")
}

// Caso 3: el rol autoritativo es el de la base de datos, no el del token.
// Token dice Admin pero el perfil real es EnEspera → 403.
func TestRequireSection_RolDelTokenNoManda(t *testing.T) {
	app := buildGuardedApp(entity.RoleEnEspera, "/sales")
	resp := doRequest(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el guard decide con el perfil de la base de datos")
}

// Caso 4: Sin header Authorization → HTTP 401 antes de llegar al guard.
func TestRequireSection_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin, "/sales")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireSection_TokenInvalido_Retorna401(t *testing.T) {
	app := buildGuardedApp(entity.RoleAdmin, "/sales")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 6: token vigente de un usuario borrado → HTTP 403 (no estado transitorio).
func TestRequireSection_UsuarioBorrado_Retorna403(t *testing.T) {
	accessUC := appaccess.NewAccessUseCase(&fakeUserRepo{}, &fakeOrgRepo{})

	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSection("/finance", accessUC),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)

	resp := doRequest(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un usuario que ya no existe en la base de datos no pasa el guard")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole — operaciones reservadas dentro de una sección visible
// ──────────────────────────────────────────────────────────────────────────────

// buildUserAdminApp replica el cableado del router para /users: la sección
// /settings es visible para todo rol activo, la administración no.
func buildUserAdminApp(dbRole string) *fiber.App {
	users := &fakeUserRepo{user: &entity.User{
		ID:             testUserID,
		OrganizationID: testOrgID,
		Role:           dbRole,
		Status:         entity.UserStatusActive,
	}}
	orgs := &fakeOrgRepo{org: &entity.Organization{
		ID:               testOrgID,
		ContractStatus:   entity.ContractActive,
		SubscriptionEnds: time.Now().AddDate(1, 0, 0),
	}}
	accessUC := appaccess.NewAccessUseCase(users, orgs)

	app := fiber.New()
	app.Put("/users/:id/role",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSection("/settings", accessUC),
		apphttp.RequireRole(accessUC, entity.RoleAdmin, entity.RoleSuperAdmin),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func doPutRole(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/users/"+testUserID+"/role", nil)
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Un Empleado puede ver /settings pero no asignarse un rol: el middleware de
// roles corta antes del handler aunque el guard de sección haya permitido.
func TestRequireRole_EmpleadoNoAsignaRoles(t *testing.T) {
	app := buildUserAdminApp(entity.RoleEmpleado)
	resp := doPutRole(t, app, tokenForUser(t, entity.RoleEmpleado))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Empleado no administra usuarios aunque /settings le sea visible")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// El claim del token no manda: token dice Admin, la base de datos dice Empleado.
func TestRequireRole_RolDelTokenNoEscala(t *testing.T) {
	app := buildUserAdminApp(entity.RoleEmpleado)
	resp := doPutRole(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el rol autoritativo es el de la base de datos")
}

func TestRequireRole_AdminAdministraUsuarios(t *testing.T) {
	app := buildUserAdminApp(entity.RoleAdmin)
	resp := doPutRole(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSuperAdmin
// ──────────────────────────────────────────────────────────────────────────────

func buildPlatformApp(role string) *fiber.App {
	users := &fakeUserRepo{user: &entity.User{
		ID:     testUserID,
		Role:   role,
		Status: entity.UserStatusActive,
	}}
	accessUC := appaccess.NewAccessUseCase(users, &fakeOrgRepo{})

	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSuperAdmin(accessUC),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func TestRequireSuperAdmin_SuperAdminPasa(t *testing.T) {
	app := buildPlatformApp(entity.RoleSuperAdmin)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSuperAdmin_AdminBloqueado(t *testing.T) {
	app := buildPlatformApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenForUser(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Admin de tenant no es plataforma")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":         apphttp.GetUserID(c),
			"organization_id": apphttp.GetOrganizationID(c),
			"role":            apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForUser(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testOrgID, body["organization_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// OptionalAuthMiddleware deja pasar peticiones anónimas con identidad vacía.
func TestOptionalAuthMiddleware_AnonimoPasa(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.OptionalAuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["user_id"], "sin token la identidad queda vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, entity.RoleFinanzas, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, organizationID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testOrgID, organizationID)
	assert.Equal(t, entity.RoleFinanzas, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrgID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
