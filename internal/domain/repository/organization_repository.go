package repository

import (
	"time"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (tenant).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetBySlug(slug string) (*entity.Organization, error)
	Update(org *entity.Organization) error
	List(limit, offset int) ([]*entity.Organization, error)
	// ExpireLapsed marca como Expired los contratos Active/OnTrial cuya fecha
	// de fin ya pasó. Devuelve los IDs afectados (para log del barrido).
	ExpireLapsed(before time.Time) ([]string, error)
}
