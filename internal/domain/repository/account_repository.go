package repository

import (
	"github.com/shopspring/decimal"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para el plan de cuentas.
// Usado dentro de transacciones para que lecturas e incrementos compartan la tx.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	ListByOrganization(organizationID string) ([]*entity.Account, error)
	Update(account *entity.Account) error
	Delete(id string) error
	HasChildren(id string) (bool, error)
	HasMovements(id string) (bool, error)
	// AddToBalance aplica un incremento atómico al saldo (balance = balance + delta).
	// Nunca leer-modificar-escribir desde la aplicación: dos ventas simultáneas
	// sobre la misma cuenta no deben perder actualizaciones.
	AddToBalance(id string, delta decimal.Decimal) error
}
