package access_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
	err  error
}

func (f *fakeOrgRepo) Create(o *entity.Organization) error {
	f.orgs[o.ID] = o
	return nil
}
func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orgs[id], nil
}
func (f *fakeOrgRepo) GetBySlug(slug string) (*entity.Organization, error) { return nil, nil }
func (f *fakeOrgRepo) Update(o *entity.Organization) error {
	f.orgs[o.ID] = o
	return nil
}
func (f *fakeOrgRepo) List(limit, offset int) ([]*entity.Organization, error) {
	return nil, nil
}
func (f *fakeOrgRepo) ExpireLapsed(before time.Time) ([]string, error) { return nil, nil }

func newFixture() (*fakeUserRepo, *fakeOrgRepo, *appaccess.AccessUseCase) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	orgs := &fakeOrgRepo{orgs: map[string]*entity.Organization{}}
	return users, orgs, appaccess.NewAccessUseCase(users, orgs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveSession_Anonimo(t *testing.T) {
	_, _, uc := newFixture()
	s := uc.ResolveSession("")
	assert.Empty(t, s.Identity)
	assert.Nil(t, s.Profile)

	d := uc.Evaluate("", "/dashboard")
	assert.Equal(t, access.RouteLogin, d.Redirect)
}

func TestResolveSession_PerfilNoResuelto_EsTransitorio(t *testing.T) {
	users, _, uc := newFixture()
	users.err = errors.New("timeout de lectura")

	s := uc.ResolveSession("uid-1")
	assert.Equal(t, "uid-1", s.Identity)
	assert.Nil(t, s.Profile, "un fallo de lectura deja el perfil sin resolver, no es error del guard")

	d := uc.Evaluate("uid-1", "/finance")
	assert.True(t, d.Allow, "estado transitorio: se permite y la siguiente evaluación decide")
}

func TestResolveSession_UsuarioInexistente_EsAnonimo(t *testing.T) {
	_, _, uc := newFixture()

	s := uc.ResolveSession("uid-borrado")
	assert.Empty(t, s.Identity,
		"un usuario que definitivamente no existe no es estado transitorio")

	d := uc.Evaluate("uid-borrado", "/finance")
	assert.False(t, d.Allow, "token vigente de un usuario borrado no abre secciones")
	assert.Equal(t, access.RouteLogin, d.Redirect)
}

func TestResolveSession_RolTenant_AdjuntaOrganizacion(t *testing.T) {
	users, orgs, uc := newFixture()
	users.users["uid-1"] = &entity.User{
		ID: "uid-1", OrganizationID: "org-1",
		Role: entity.RoleFinanzas, Status: entity.UserStatusActive,
	}
	orgs.orgs["org-1"] = &entity.Organization{
		ID:               "org-1",
		ContractStatus:   entity.ContractActive,
		SubscriptionEnds: time.Now().AddDate(1, 0, 0),
	}

	s := uc.ResolveSession("uid-1")
	assert.NotNil(t, s.Organization)

	d := uc.Evaluate("uid-1", "/finance/accounts")
	assert.True(t, d.Allow)
}

func TestResolveSession_SuscripcionVencida_DecideConDatosFrescos(t *testing.T) {
	users, orgs, uc := newFixture()
	users.users["uid-1"] = &entity.User{
		ID: "uid-1", OrganizationID: "org-1",
		Role: entity.RoleAdmin, Status: entity.UserStatusActive,
	}
	orgs.orgs["org-1"] = &entity.Organization{
		ID:               "org-1",
		ContractStatus:   entity.ContractActive,
		SubscriptionEnds: time.Now().AddDate(0, 0, -10),
	}

	d := uc.Evaluate("uid-1", "/dashboard")
	assert.Equal(t, access.RouteSubscriptionExpired, d.Redirect)

	// El tenant renueva: la siguiente evaluación ya no retiene (sin caché).
	orgs.orgs["org-1"].SubscriptionEnds = time.Now().AddDate(1, 0, 0)
	d = uc.Evaluate("uid-1", "/dashboard")
	assert.True(t, d.Allow)
}

func TestResolveSession_SuperAdmin_NoConsultaOrganizacion(t *testing.T) {
	users, orgs, uc := newFixture()
	users.users["uid-sa"] = &entity.User{
		ID: "uid-sa", Role: entity.RoleSuperAdmin, Status: entity.UserStatusActive,
	}
	orgs.err = errors.New("no debería consultarse")

	s := uc.ResolveSession("uid-sa")
	assert.Nil(t, s.Organization, "SuperAdmin queda exento de los chequeos de suscripción")

	d := uc.Evaluate("uid-sa", "/admin/tenants")
	assert.True(t, d.Allow)
}
