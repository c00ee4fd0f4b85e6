package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto del catálogo vendible en el POS.
type Product struct {
	ID             string
	OrganizationID string
	SKU            string
	Name           string
	SalePrice      decimal.Decimal
	CostPrice      decimal.Decimal
	TaxRate        decimal.Decimal // fracción, ej. 0.19 para IVA 19%
	Stock          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
