package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// AccountRefs son las cinco cuentas concretas sobre las que se asienta una venta.
type AccountRefs struct {
	Cash         string
	SalesRevenue string
	TaxPayable   string
	Inventory    string
	COGS         string
}

// RefsFromSettings extrae las referencias de cuenta de la configuración contable.
func RefsFromSettings(s *entity.AccountingSettings) AccountRefs {
	return AccountRefs{
		Cash:         s.CashAccountID,
		SalesRevenue: s.SalesRevenueAccountID,
		TaxPayable:   s.TaxPayableAccountID,
		Inventory:    s.InventoryAccountID,
		COGS:         s.COGSAccountID,
	}
}

// Complete indica si las cinco cuentas están configuradas. Si falta alguna,
// la contabilización se omite completa: nunca un asiento parcial.
func (r AccountRefs) Complete() bool {
	return r.Cash != "" && r.SalesRevenue != "" && r.TaxPayable != "" &&
		r.Inventory != "" && r.COGS != ""
}

// BuildSaleEntry construye el asiento de partida doble de una venta cerrada:
// reconocimiento de ingreso más costo de la mercancía vendida. Exactamente
// cinco líneas, balanceadas por construcción siempre que la venta cumpla
// Total = Subtotal + Tax (invariante que garantiza quien crea la venta).
//
//	Débito  Caja               Total
//	Crédito IVA por pagar      Tax
//	Crédito Ingresos por venta Subtotal
//	Débito  Costo de venta     COGS
//	Crédito Inventario         COGS
func BuildSaleEntry(sale *entity.Sale, refs AccountRefs) entity.JournalEntry {
	cogs := sale.TotalCOGS()
	return entity.JournalEntry{
		OrganizationID: sale.OrganizationID,
		Date:           sale.Date,
		Description:    "Venta POS " + sale.ID,
		Lines: []entity.JournalLine{
			{AccountID: refs.Cash, Debit: sale.Total},
			{AccountID: refs.TaxPayable, Credit: sale.Tax},
			{AccountID: refs.SalesRevenue, Credit: sale.Subtotal},
			{AccountID: refs.COGS, Debit: cogs},
			{AccountID: refs.Inventory, Credit: cogs},
		},
	}
}

// BalanceDelta devuelve el cambio de saldo que produce una línea según el tipo
// de cuenta: Activo y Gasto crecen con el débito; Pasivo, Patrimonio e Ingreso
// con el crédito.
func BalanceDelta(accountType string, debit, credit decimal.Decimal) decimal.Decimal {
	switch accountType {
	case entity.AccountActivo, entity.AccountGasto:
		return debit.Sub(credit)
	default:
		return credit.Sub(debit)
	}
}

// NewManualEntry construye un asiento manual validando el invariante contable.
func NewManualEntry(organizationID, description string, date time.Time, lines []entity.JournalLine) (entity.JournalEntry, bool) {
	e := entity.JournalEntry{
		OrganizationID: organizationID,
		Date:           date,
		Description:    description,
		Lines:          lines,
	}
	return e, e.IsBalanced()
}
