package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

var _ repository.AccountingSettingsRepository = (*AccountingSettingsRepo)(nil)

// AccountingSettingsRepo implementación del puerto AccountingSettingsRepository sobre PostgreSQL.
// Una fila por organización; los cinco roles contables se guardan como texto
// vacío mientras no estén configurados.
type AccountingSettingsRepo struct {
	pool *pgxpool.Pool
}

// NewAccountingSettingsRepository construye el adaptador de persistencia para la configuración contable.
func NewAccountingSettingsRepository(pool *pgxpool.Pool) *AccountingSettingsRepo {
	return &AccountingSettingsRepo{pool: pool}
}

// GetByOrganization devuelve la configuración o nil si la organización no tiene fila.
func (r *AccountingSettingsRepo) GetByOrganization(organizationID string) (*entity.AccountingSettings, error) {
	query := `
		SELECT organization_id, cash_account_id, sales_revenue_account_id, tax_payable_account_id, inventory_account_id, cogs_account_id, updated_at
		FROM accounting_settings WHERE organization_id = $1`
	var s entity.AccountingSettings
	err := r.pool.QueryRow(context.Background(), query, organizationID).Scan(
		&s.OrganizationID, &s.CashAccountID, &s.SalesRevenueAccountID,
		&s.TaxPayableAccountID, &s.InventoryAccountID, &s.COGSAccountID, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get accounting settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la configuración contable de la organización.
func (r *AccountingSettingsRepo) Upsert(settings *entity.AccountingSettings) error {
	query := `
		INSERT INTO accounting_settings (organization_id, cash_account_id, sales_revenue_account_id, tax_payable_account_id, inventory_account_id, cogs_account_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id) DO UPDATE SET
			cash_account_id = EXCLUDED.cash_account_id,
			sales_revenue_account_id = EXCLUDED.sales_revenue_account_id,
			tax_payable_account_id = EXCLUDED.tax_payable_account_id,
			inventory_account_id = EXCLUDED.inventory_account_id,
			cogs_account_id = EXCLUDED.cogs_account_id,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		settings.OrganizationID, settings.CashAccountID, settings.SalesRevenueAccountID,
		settings.TaxPayableAccountID, settings.InventoryAccountID, settings.COGSAccountID,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert accounting settings: %w", err)
	}
	return nil
}
