package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta contable. El signo del saldo depende del tipo:
// Activo y Gasto crecen con el débito; Pasivo, Patrimonio e Ingreso con el crédito.
const (
	AccountActivo     = "Activo"
	AccountPasivo     = "Pasivo"
	AccountPatrimonio = "Patrimonio"
	AccountIngreso    = "Ingreso"
	AccountGasto      = "Gasto"
)

// ValidAccountTypes conjunto de tipos aceptados al crear cuentas.
var ValidAccountTypes = map[string]bool{
	AccountActivo:     true,
	AccountPasivo:     true,
	AccountPatrimonio: true,
	AccountIngreso:    true,
	AccountGasto:      true,
}

// Account es una cuenta del plan contable de una organización.
// Las cuentas padre (de clase) nunca reciben movimientos directos.
type Account struct {
	ID             string
	OrganizationID string
	Code           string
	Name           string
	Type           string // ver constantes Account*
	Balance        decimal.Decimal
	IsParent       bool
	ParentID       string // vacío si es cuenta raíz
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
