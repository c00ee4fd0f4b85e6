package entity

import "time"

// Estados del contrato de una organización (tenant).
const (
	ContractActive    = "Active"
	ContractOnTrial   = "OnTrial"
	ContractExpired   = "Expired"
	ContractCancelled = "Cancelled"
	ContractPending   = "Pending"
)

// Organization representa un tenant: una cuenta de cliente aislada cuyos
// usuarios y datos se delimitan por su identificador.
type Organization struct {
	ID               string
	Name             string
	Slug             string // identificador público usado en rutas /o/<slug>
	ContractStatus   string // ver constantes Contract*
	SubscriptionEnds time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
