package repository

import "github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"

// AccountingSettingsRepository define el puerto para el mapeo de roles contables.
type AccountingSettingsRepository interface {
	// GetByOrganization devuelve la configuración o nil si la organización
	// no ha configurado ninguna cuenta todavía.
	GetByOrganization(organizationID string) (*entity.AccountingSettings, error)
	Upsert(settings *entity.AccountingSettings) error
}
