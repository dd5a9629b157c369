package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
	"github.com/gestionpyme/erp-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, warehouseRepo repository.WarehouseRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, warehouseRepo: warehouseRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un perfil: hashea password con bcrypt y persiste.
// Si la request no trae bodega, se crea una nueva y el usuario queda como
// admin de ella (primer registro de una empresa). Si la trae, el perfil se
// suma a esa bodega con rol vendedor por defecto.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	warehouseID := in.WarehouseID
	roles := in.Roles

	if warehouseID == "" {
		wh := &entity.Warehouse{
			ID:        uuid.New().String(),
			Name:      "Bodega Principal",
			IsMain:    true,
			Active:    true,
			CreatedAt: now,
		}
		if err := uc.warehouseRepo.Create(wh); err != nil {
			return nil, err
		}
		warehouseID = wh.ID
		if len(roles) == 0 {
			roles = []string{entity.RoleAdmin}
		}
	} else {
		wh, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound // bodega no existe
		}
		if len(roles) == 0 {
			roles = []string{entity.RoleVendedor}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.FullName
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		WarehouseID:  warehouseID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     name,
		Phone:        in.Phone,
		Roles:        roles,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.WarehouseID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea el perfil a su DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		WarehouseID: u.WarehouseID,
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		Roles:       u.Roles,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
