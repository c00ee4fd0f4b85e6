package entity

import "time"

// AccountingSettings mapea los cinco roles contables de la organización a
// cuentas concretas del plan. La contabilización de ventas exige los cinco;
// si falta alguno, el asiento se omite por completo (nunca un asiento parcial).
type AccountingSettings struct {
	OrganizationID        string
	CashAccountID         string
	SalesRevenueAccountID string
	TaxPayableAccountID   string
	InventoryAccountID    string
	COGSAccountID         string
	UpdatedAt             time.Time
}

// Complete indica si los cinco roles contables están configurados.
func (s *AccountingSettings) Complete() bool {
	return s.CashAccountID != "" &&
		s.SalesRevenueAccountID != "" &&
		s.TaxPayableAccountID != "" &&
		s.InventoryAccountID != "" &&
		s.COGSAccountID != ""
}
