package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/jwt"
)

// Duración del periodo de prueba de una organización recién creada.
const trialDays = 30

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de organización, registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// Signup crea una organización nueva en periodo de prueba junto con su usuario Admin.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.SignupResponse, error) {
	if in.OrganizationName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	slug := in.Slug
	if slug == "" {
		slug = slugify(in.OrganizationName)
	}
	if existing, _ := uc.orgRepo.GetBySlug(slug); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	org := &entity.Organization{
		ID:               uuid.New().String(),
		Name:             in.OrganizationName,
		Slug:             slug,
		ContractStatus:   entity.ContractOnTrial,
		SubscriptionEnds: now.AddDate(0, 0, trialDays),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}

	user, err := uc.createUser(org.ID, in.Email, in.Password, in.Name, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SignupResponse{
		Organization: toOrganizationResponse(org),
		User:         *toUserResponse(user),
		Token:        token,
	}, nil
}

// RegisterUser crea un usuario en una organización existente. El rol inicial
// es siempre SinAsignar: el guard lo retiene en /pending-approval hasta que
// un Admin le asigne rol.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.OrganizationID == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgRepo.GetByID(in.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	user, err := uc.createUser(in.OrganizationID, in.Email, in.Password, in.Name, entity.RoleSinAsignar)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Los estados Cancelled y Pending sí pueden autenticarse: el guard los
// retiene en su página terminal; solo Inactive queda fuera.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status == entity.UserStatusInactive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña del usuario y limpia el flag de cambio forzado.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ForcePasswordChange = false
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func (uc *AuthUseCase) createUser(orgID, email, password, name, role string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Email:          email,
		PasswordHash:   string(hash),
		Name:           name,
		Role:           role,
		Status:         entity.UserStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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

func toOrganizationResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:               o.ID,
		Name:             o.Name,
		Slug:             o.Slug,
		ContractStatus:   o.ContractStatus,
		SubscriptionEnds: o.SubscriptionEnds,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
