package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/config"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// AuthService coordinates back-office sign-in and account management.
type AuthService struct {
	accounts   repository.AccountRepository
	roles      repository.RoleRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, accounts repository.AccountRepository, roles repository.RoleRepository) *AuthService {
	return &AuthService{
		accounts:   accounts,
		roles:      roles,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for session resolution wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates an account and issues a token. Roles are not embedded
// beyond the subject; every request re-reads them.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if account.PasswordHash == "" {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return account, token, exp, nil
}

// RegisterClient creates a client account with a generated client code and
// grants the client role.
func (s *AuthService) RegisterClient(ctx context.Context, fullName, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	account := &domain.Account{
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		ClientCode:   generateClientCode(),
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.roles.Grant(ctx, account.ID, domain.RoleClient); err != nil {
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

func generateClientCode() string {
	return "CLT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
