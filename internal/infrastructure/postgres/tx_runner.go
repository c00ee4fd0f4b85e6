package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/ledger"
	appsales "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/sales"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ appledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del libro mayor atados a la tx y
// hace Commit o Rollback. Las búsquedas de cuentas y los incrementos de saldo
// comparten la transacción: un asiento se aplica completo o no se aplica.
func (r *TxRunner) Run(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	journalRepo repository.JournalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewAccountRepository(tx)
	journalRepo := NewJournalRepository(tx)

	if err := fn(accountRepo, journalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SaleTxRunner ejecuta el cierre de venta (descuento de stock + venta) en una
// transacción propia, separada de la contable.
type SaleTxRunner struct {
	pool *pgxpool.Pool
}

// NewSaleTxRunner construye el runner de ventas.
func NewSaleTxRunner(pool *pgxpool.Pool) *SaleTxRunner {
	return &SaleTxRunner{pool: pool}
}

var _ appsales.TxRunner = (*SaleTxRunner)(nil)

// Run inicia la transacción de venta y hace Commit o Rollback.
func (r *SaleTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
