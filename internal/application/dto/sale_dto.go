package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleItemRequest línea de venta del POS. Si UnitPrice es cero se usa
// el precio de lista del producto.
type CreateSaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest cierre de una venta en el POS.
type CreateSaleRequest struct {
	Items []CreateSaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
	UnitCostPrice decimal.Decimal `json:"unit_cost_price"`
}

// SaleResponse venta cerrada. La contabilización corre aparte: su falla se
// registra pero nunca revierte la venta.
type SaleResponse struct {
	ID       string             `json:"id"`
	Date     time.Time          `json:"date"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
	Items    []SaleItemResponse `json:"items"`
}

// CreateProductRequest alta de producto del catálogo.
type CreateProductRequest struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Stock     decimal.Decimal `json:"stock"`
}

// ProductResponse vista de producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Stock     decimal.Decimal `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
