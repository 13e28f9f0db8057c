package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
)

// SessionResolver turns a bearer token into an Identity. Every failure path
// yields the anonymous identity: an unreachable backend or a bad token must
// narrow access, never widen it, and must not take the process down.
type SessionResolver struct {
	tokens *TokenManager
	roles  repository.RoleRepository
	logger *zap.Logger
}

// NewSessionResolver constructs the resolver.
func NewSessionResolver(tokens *TokenManager, roles repository.RoleRepository, logger *zap.Logger) *SessionResolver {
	return &SessionResolver{tokens: tokens, roles: roles, logger: logger}
}

// Resolve parses the token and loads the caller's current roles.
func (r *SessionResolver) Resolve(ctx context.Context, tokenStr string) Identity {
	if tokenStr == "" {
		return Anonymous()
	}

	claims, err := r.tokens.ParseToken(tokenStr)
	if err != nil {
		r.logger.Debug("token rejected", zap.Error(err))
		return Anonymous()
	}

	roles, err := r.roles.ListForUser(ctx, claims.SubjectID)
	if err != nil {
		r.logger.Warn("role lookup failed; treating session as anonymous",
			zap.String("user_id", claims.SubjectID), zap.Error(err))
		return Anonymous()
	}

	return Identity{
		UserID: claims.SubjectID,
		Roles:  domain.NewRoleSet(roles),
	}
}
