package repository

import "github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"

// JournalRepository define el puerto de persistencia para asientos contables.
type JournalRepository interface {
	Create(entry *entity.JournalEntry) error
	GetByID(id string) (*entity.JournalEntry, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.JournalEntry, error)
}
