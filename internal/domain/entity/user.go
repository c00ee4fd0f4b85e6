package entity

import "time"

// Roles del sistema. Enum cerrado: el esquema asigna SinAsignar al crear
// un usuario y los valores fuera de esta lista no son representables.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleAcademico  = "Academico"
	RoleRRHH       = "RRHH"
	RoleFinanzas   = "Finanzas"
	RoleEstudiante = "Estudiante"
	RoleEmpleado   = "Empleado"
	RoleEnEspera   = "EnEspera"
	RoleSinAsignar = "SinAsignar"
	RoleVentas     = "Ventas"
	RoleMarketing  = "Marketing"
	RoleSoporte    = "Soporte"
	RoleCancelled  = "Cancelled"
)

// Estados de usuario.
const (
	UserStatusActive    = "Active"
	UserStatusInactive  = "Inactive"
	UserStatusPending   = "Pending"
	UserStatusCancelled = "Cancelled"
)

// ValidRoles conjunto de roles aceptados al asignar.
var ValidRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleAcademico:  true,
	RoleRRHH:       true,
	RoleFinanzas:   true,
	RoleEstudiante: true,
	RoleEmpleado:   true,
	RoleEnEspera:   true,
	RoleSinAsignar: true,
	RoleVentas:     true,
	RoleMarketing:  true,
	RoleSoporte:    true,
	RoleCancelled:  true,
}

// User representa el perfil de un usuario del sistema.
// SuperAdmin no pertenece a ninguna organización (OrganizationID vacío).
type User struct {
	ID                  string
	OrganizationID      string
	Email               string
	PasswordHash        string // bcrypt hash, nunca plano en dominio después de persistir
	Name                string
	Role                string // ver constantes Role*
	Status              string // ver constantes UserStatus*
	ForcePasswordChange bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
