package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest alta de una cuenta del plan contable.
type CreateAccountRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"` // Activo, Pasivo, Patrimonio, Ingreso, Gasto
	IsParent bool   `json:"is_parent"`
	ParentID string `json:"parent_id,omitempty"`
}

// AccountResponse vista de una cuenta y su saldo corriente.
type AccountResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	IsParent  bool            `json:"is_parent"`
	ParentID  string          `json:"parent_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountingSettingsRequest mapeo de los cinco roles contables a cuentas.
type AccountingSettingsRequest struct {
	CashAccountID         string `json:"cash_account_id"`
	SalesRevenueAccountID string `json:"sales_revenue_account_id"`
	TaxPayableAccountID   string `json:"tax_payable_account_id"`
	InventoryAccountID    string `json:"inventory_account_id"`
	COGSAccountID         string `json:"cogs_account_id"`
}

// AccountingSettingsResponse configuración contable actual de la organización.
type AccountingSettingsResponse struct {
	CashAccountID         string `json:"cash_account_id"`
	SalesRevenueAccountID string `json:"sales_revenue_account_id"`
	TaxPayableAccountID   string `json:"tax_payable_account_id"`
	InventoryAccountID    string `json:"inventory_account_id"`
	COGSAccountID         string `json:"cogs_account_id"`
	Complete              bool   `json:"complete"`
}
