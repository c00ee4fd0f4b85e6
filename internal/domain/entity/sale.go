package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea de venta del punto de venta.
// UnitCostPrice se congela al momento de la venta (costo del producto en ese instante).
type SaleItem struct {
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	UnitSalePrice decimal.Decimal
	UnitCostPrice decimal.Decimal
	TaxRate       decimal.Decimal // fracción, ej. 0.19
}

// Sale representa una venta cerrada en el POS. Total = Subtotal + Tax;
// el invariante lo garantiza el caso de uso que construye la venta.
type Sale struct {
	ID             string
	OrganizationID string
	UserID         string
	Date           time.Time
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Items          []SaleItem
	CreatedAt      time.Time
}

// TotalCOGS devuelve el costo total de la mercancía vendida: Σ(costo unitario × cantidad).
func (s *Sale) TotalCOGS() decimal.Decimal {
	var total decimal.Decimal
	for _, it := range s.Items {
		total = total.Add(it.UnitCostPrice.Mul(it.Quantity))
	}
	return total
}
