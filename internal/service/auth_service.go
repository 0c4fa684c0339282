package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/auth"
	"github.com/vetcare/clinic-service/internal/config"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/repository"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new client account. Self-registration never produces any
// role other than cliente.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return apperrors.NewConflict("Email ya registrado")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: hash,
		Telefono:     req.Telefono,
		Direccion:    req.Direccion,
		Rol:          domain.RoleCliente,
	}
	return s.users.Create(ctx, user)
}

// Login authenticates the credentials and issues the session token. Unknown
// email and bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.PublicUser{}, apperrors.NewUnauthorized("Credenciales inválidas")
		}
		return "", domain.PublicUser{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", domain.PublicUser{}, apperrors.NewUnauthorized("Credenciales inválidas")
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID, user.Rol)
	if err != nil {
		return "", domain.PublicUser{}, err
	}
	return token, user.Public(), nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
