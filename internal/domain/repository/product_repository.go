package repository

import (
	"github.com/shopspring/decimal"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta stock de forma atómica; falla con
	// domain.ErrInsufficientStock si la cantidad disponible no alcanza.
	DecrementStock(id string, quantity decimal.Decimal) error
}
