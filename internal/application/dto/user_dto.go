package dto

// AssignRoleRequest asignación de rol a un usuario de la organización.
type AssignRoleRequest struct {
	Role string `json:"role"`
}

// SetForcePasswordChangeRequest marca o limpia el cambio de contraseña forzado.
type SetForcePasswordChangeRequest struct {
	ForcePasswordChange bool `json:"force_password_change"`
}
