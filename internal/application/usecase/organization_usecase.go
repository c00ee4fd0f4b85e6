package usecase

import (
	"time"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// Estados de contrato asignables desde la administración.
var validContractStatus = map[string]bool{
	entity.ContractActive:    true,
	entity.ContractOnTrial:   true,
	entity.ContractExpired:   true,
	entity.ContractCancelled: true,
	entity.ContractPending:   true,
}

// OrganizationUseCase administración de tenants.
type OrganizationUseCase struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(orgRepo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{orgRepo: orgRepo}
}

// GetByID devuelve una organización.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.orgRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrgResponse(org)
	return &resp, nil
}

// List devuelve todos los tenants (solo SuperAdmin).
func (uc *OrganizationUseCase) List(page dto.PageRequest) ([]*dto.OrganizationResponse, error) {
	page.DefaultPage()
	orgs, err := uc.orgRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		resp := toOrgResponse(o)
		out = append(out, &resp)
	}
	return out, nil
}

// UpdateContract cambia el estado contractual y/o la fecha de fin de
// suscripción de un tenant (solo SuperAdmin).
func (uc *OrganizationUseCase) UpdateContract(id string, in dto.UpdateContractRequest) (*dto.OrganizationResponse, error) {
	if !validContractStatus[in.ContractStatus] {
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	org.ContractStatus = in.ContractStatus
	if in.SubscriptionEnds != nil {
		org.SubscriptionEnds = *in.SubscriptionEnds
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Update(org); err != nil {
		return nil, err
	}
	resp := toOrgResponse(org)
	return &resp, nil
}

func toOrgResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:               o.ID,
		Name:             o.Name,
		Slug:             o.Slug,
		ContractStatus:   o.ContractStatus,
		SubscriptionEnds: o.SubscriptionEnds,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
