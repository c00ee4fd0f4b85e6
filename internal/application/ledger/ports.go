package ledger

import (
	"context"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Las búsquedas de cuentas y los incrementos de
// saldo comparten la transacción: o el asiento y los cinco deltas se aplican
// juntos, o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		journalRepo repository.JournalRepository,
	) error) error
}
