package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// AccountUseCase administra el plan de cuentas y el mapeo de roles contables.
type AccountUseCase struct {
	accountRepo  repository.AccountRepository
	settingsRepo repository.AccountingSettingsRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(accountRepo repository.AccountRepository, settingsRepo repository.AccountingSettingsRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, settingsRepo: settingsRepo}
}

// Create da de alta una cuenta del plan. Si referencia un padre, este debe
// existir, ser cuenta padre y pertenecer a la misma organización.
func (uc *AccountUseCase) Create(organizationID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Code == "" || in.Name == "" || !entity.ValidAccountTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.accountRepo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.OrganizationID != organizationID {
			return nil, domain.ErrNotFound
		}
		if !parent.IsParent {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Code:           in.Code,
		Name:           in.Name,
		Type:           in.Type,
		Balance:        decimal.Zero,
		IsParent:       in.IsParent,
		ParentID:       in.ParentID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List devuelve el plan de cuentas de la organización.
func (uc *AccountUseCase) List(organizationID string) ([]*dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// Delete elimina una cuenta sin subcuentas ni movimientos.
func (uc *AccountUseCase) Delete(organizationID, id string) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if account.OrganizationID != organizationID {
		return domain.ErrForbidden
	}
	if account.IsParent {
		children, err := uc.accountRepo.HasChildren(id)
		if err != nil {
			return err
		}
		if children {
			return domain.ErrAccountInUse
		}
	}
	moved, err := uc.accountRepo.HasMovements(id)
	if err != nil {
		return err
	}
	if moved {
		return domain.ErrAccountInUse
	}
	return uc.accountRepo.Delete(id)
}

// GetSettings devuelve el mapeo de roles contables de la organización.
func (uc *AccountUseCase) GetSettings(organizationID string) (*dto.AccountingSettingsResponse, error) {
	settings, err := uc.settingsRepo.GetByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.AccountingSettings{OrganizationID: organizationID}
	}
	return &dto.AccountingSettingsResponse{
		CashAccountID:         settings.CashAccountID,
		SalesRevenueAccountID: settings.SalesRevenueAccountID,
		TaxPayableAccountID:   settings.TaxPayableAccountID,
		InventoryAccountID:    settings.InventoryAccountID,
		COGSAccountID:         settings.COGSAccountID,
		Complete:              settings.Complete(),
	}, nil
}

// UpdateSettings reemplaza el mapeo de roles contables. Cada cuenta
// referenciada debe existir, pertenecer a la organización y no ser padre.
func (uc *AccountUseCase) UpdateSettings(organizationID string, in dto.AccountingSettingsRequest) (*dto.AccountingSettingsResponse, error) {
	for _, id := range []string{
		in.CashAccountID, in.SalesRevenueAccountID, in.TaxPayableAccountID,
		in.InventoryAccountID, in.COGSAccountID,
	} {
		if id == "" {
			continue
		}
		account, err := uc.accountRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if account == nil || account.OrganizationID != organizationID {
			return nil, domain.ErrNotFound
		}
		if account.IsParent {
			return nil, domain.ErrParentAccount
		}
	}
	settings := &entity.AccountingSettings{
		OrganizationID:        organizationID,
		CashAccountID:         in.CashAccountID,
		SalesRevenueAccountID: in.SalesRevenueAccountID,
		TaxPayableAccountID:   in.TaxPayableAccountID,
		InventoryAccountID:    in.InventoryAccountID,
		COGSAccountID:         in.COGSAccountID,
		UpdatedAt:             time.Now(),
	}
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return uc.GetSettings(organizationID)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance,
		IsParent:  a.IsParent,
		ParentID:  a.ParentID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
