package dto

import "time"

// SignupRequest alta de una organización nueva junto con su usuario Admin.
type SignupRequest struct {
	OrganizationName string `json:"organization_name"`
	Slug             string `json:"slug"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Name             string `json:"name"`
}

// RegisterRequest alta de un usuario dentro de una organización existente.
// El rol inicial es siempre SinAsignar; un Admin lo asigna después.
type RegisterRequest struct {
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse vista pública de un usuario (sin hash).
type UserResponse struct {
	ID                  string    `json:"id"`
	OrganizationID      string    `json:"organization_id,omitempty"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	Status              string    `json:"status"`
	ForcePasswordChange bool      `json:"force_password_change"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LoginResponse token más usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SignupResponse organización creada más su Admin y token inicial.
type SignupResponse struct {
	Organization OrganizationResponse `json:"organization"`
	User         UserResponse         `json:"user"`
	Token        string               `json:"token"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
