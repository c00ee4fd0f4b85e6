package usecase

import (
	"time"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro de una organización.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve los usuarios de la organización.
func (uc *UserUseCase) List(organizationID string, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.ListByOrganization(organizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return out, nil
}

// AssignRole asigna un rol del enum cerrado a un usuario de la organización.
// SuperAdmin no es asignable desde un tenant.
func (uc *UserUseCase) AssignRole(organizationID, userID string, in dto.AssignRoleRequest) (*dto.UserResponse, error) {
	if !entity.ValidRoles[in.Role] || in.Role == entity.RoleSuperAdmin {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.getOrgUser(organizationID, userID)
	if err != nil {
		return nil, err
	}
	user.Role = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserView(user), nil
}

// SetForcePasswordChange marca o limpia la retención blanda de cambio de contraseña.
func (uc *UserUseCase) SetForcePasswordChange(organizationID, userID string, force bool) (*dto.UserResponse, error) {
	user, err := uc.getOrgUser(organizationID, userID)
	if err != nil {
		return nil, err
	}
	user.ForcePasswordChange = force
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserView(user), nil
}

func (uc *UserUseCase) getOrgUser(organizationID, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func toUserView(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                  u.ID,
		OrganizationID:      u.OrganizationID,
		Email:               u.Email,
		Name:                u.Name,
		Role:                u.Role,
		Status:              u.Status,
		ForcePasswordChange: u.ForcePasswordChange,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
