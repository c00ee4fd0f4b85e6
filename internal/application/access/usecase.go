package access

import (
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// AccessUseCase resuelve la sesión contra la base de datos y la evalúa con el
// guard de navegación. La sesión se reconstruye desde cero en cada llamada:
// estado de suscripción y perfil siempre frescos, nada cacheado.
type AccessUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewAccessUseCase construye el caso de uso del guard.
func NewAccessUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *AccessUseCase {
	return &AccessUseCase{userRepo: userRepo, orgRepo: orgRepo}
}

// ResolveSession arma la sesión efímera para una identidad (vacía = anónimo).
// Los fallos de lectura no son errores del guard: un perfil que no se pudo
// resolver deja la sesión en estado transitorio y la siguiente evaluación
// decide con datos completos. Una identidad que definitivamente no existe
// (usuario borrado con token aún vigente) no es transitoria: la sesión queda
// anónima y el guard la trata como no autenticada.
func (uc *AccessUseCase) ResolveSession(identity string) access.Session {
	if identity == "" {
		return access.Session{}
	}
	s := access.Session{Identity: identity}

	user, err := uc.userRepo.GetByID(identity)
	if err != nil {
		return s
	}
	if user == nil {
		return access.Session{}
	}
	s.Profile = &access.Profile{
		Role:                user.Role,
		OrganizationID:      user.OrganizationID,
		Status:              user.Status,
		ForcePasswordChange: user.ForcePasswordChange,
	}

	// La organización solo se adjunta para roles de tenant; SuperAdmin queda
	// exento de los chequeos de suscripción.
	if user.Role != entity.RoleSuperAdmin && user.OrganizationID != "" {
		org, err := uc.orgRepo.GetByID(user.OrganizationID)
		if err == nil && org != nil {
			s.Organization = &access.Subscription{
				ContractStatus:   org.ContractStatus,
				SubscriptionEnds: org.SubscriptionEnds,
			}
		}
	}
	return s
}

// Evaluate decide si la identidad puede ver pathname.
func (uc *AccessUseCase) Evaluate(identity, pathname string) access.Decision {
	return access.Evaluate(uc.ResolveSession(identity), pathname)
}

// EvaluateToDTO evalúa y arma la respuesta HTTP del guard.
func (uc *AccessUseCase) EvaluateToDTO(identity, pathname string) dto.AccessDecisionResponse {
	d := uc.Evaluate(identity, pathname)
	return dto.AccessDecisionResponse{
		Path:     pathname,
		Allow:    d.Allow,
		Redirect: d.Redirect,
	}
}
