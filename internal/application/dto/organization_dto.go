package dto

import "time"

// OrganizationResponse vista de un tenant.
type OrganizationResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	ContractStatus   string    `json:"contract_status"`
	SubscriptionEnds time.Time `json:"subscription_ends"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UpdateContractRequest cambio de estado contractual (solo SuperAdmin).
type UpdateContractRequest struct {
	ContractStatus   string     `json:"contract_status"`
	SubscriptionEnds *time.Time `json:"subscription_ends,omitempty"`
}
