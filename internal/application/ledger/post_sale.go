package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/ledger"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/logger"
)

// PostingUseCase contabiliza ventas y asientos manuales sobre el plan de cuentas.
type PostingUseCase struct {
	settingsRepo repository.AccountingSettingsRepository
	txRunner     TxRunner
	log          *logger.Logger
}

// NewPostingUseCase construye el caso de uso de contabilización.
func NewPostingUseCase(settingsRepo repository.AccountingSettingsRepository, txRunner TxRunner, log *logger.Logger) *PostingUseCase {
	return &PostingUseCase{settingsRepo: settingsRepo, txRunner: txRunner, log: log}
}

// PostSale genera y aplica el asiento de partida doble de una venta ya
// confirmada. Si la configuración contable está incompleta, se omite el
// asiento completo (warning, no error): la venta queda intacta y el faltante
// se concilia manualmente. Cualquier fallo a mitad de procedimiento revierte
// todo; nunca quedan saldos aplicados a medias.
func (uc *PostingUseCase) PostSale(ctx context.Context, sale *entity.Sale) error {
	settings, err := uc.settingsRepo.GetByOrganization(sale.OrganizationID)
	if err != nil {
		uc.log.Error().Err(err).
			Str("organization_id", sale.OrganizationID).
			Str("sale_id", sale.ID).
			Msg("no se pudo leer la configuración contable; venta sin asiento")
		return err
	}
	if settings == nil || !ledger.RefsFromSettings(settings).Complete() {
		uc.log.Warn().
			Str("organization_id", sale.OrganizationID).
			Str("sale_id", sale.ID).
			Msg("configuración contable incompleta; venta sin asiento, conciliar manualmente")
		return nil
	}

	entry := ledger.BuildSaleEntry(sale, ledger.RefsFromSettings(settings))
	if err := uc.apply(ctx, &entry); err != nil {
		uc.log.Error().Err(err).
			Str("sale_id", sale.ID).
			Msg("contabilización de venta falló; la venta queda confirmada sin asiento")
		return err
	}
	return nil
}

// PostManualEntry valida y aplica un asiento manual balanceado.
func (uc *PostingUseCase) PostManualEntry(ctx context.Context, organizationID, description string, date time.Time, lines []entity.JournalLine) (*entity.JournalEntry, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if date.IsZero() {
		date = time.Now()
	}
	entry, balanced := ledger.NewManualEntry(organizationID, description, date, lines)
	if !balanced {
		return nil, domain.ErrUnbalancedEntry
	}
	if err := uc.apply(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// apply ejecuta el asiento como unidad atómica: valida cada cuenta dentro de
// la transacción, aplica el delta con el incremento atómico de saldo y
// persiste el asiento. El saldo jamás se lee-modifica-escribe desde aquí.
func (uc *PostingUseCase) apply(ctx context.Context, entry *entity.JournalEntry) error {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()

	return uc.txRunner.Run(ctx, func(
		accountRepo repository.AccountRepository,
		journalRepo repository.JournalRepository,
	) error {
		for _, line := range entry.Lines {
			account, err := accountRepo.GetByID(line.AccountID)
			if err != nil {
				return fmt.Errorf("buscar cuenta %s: %w", line.AccountID, err)
			}
			if account == nil {
				return fmt.Errorf("cuenta %s: %w", line.AccountID, domain.ErrNotFound)
			}
			if account.OrganizationID != entry.OrganizationID {
				return domain.ErrForbidden
			}
			if account.IsParent {
				return domain.ErrParentAccount
			}
			delta := ledger.BalanceDelta(account.Type, line.Debit, line.Credit)
			if err := accountRepo.AddToBalance(account.ID, delta); err != nil {
				return fmt.Errorf("aplicar delta a cuenta %s: %w", account.ID, err)
			}
		}
		return journalRepo.Create(entry)
	})
}
