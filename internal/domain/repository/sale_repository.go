package repository

import "github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas del POS.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Sale, error)
}
