package auth

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

type stubRoleRepo struct {
	roles map[string][]domain.Role
	err   error
}

func (s *stubRoleRepo) ListForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roles[userID], nil
}
func (s *stubRoleRepo) RoleMap(ctx context.Context, userIDs []string) (map[string]domain.RoleSet, error) {
	return nil, nil
}
func (s *stubRoleRepo) Grant(ctx context.Context, userID string, role domain.Role) error { return nil }
func (s *stubRoleRepo) Revoke(ctx context.Context, userID string, role domain.Role) error {
	return nil
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, _, err := tm.GenerateToken("user-1", "one@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.SubjectID != "user-1" {
		t.Fatalf("sub = %q", claims.SubjectID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 30).GenerateToken("user-1", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 30).ParseToken(token); err == nil {
		t.Fatal("expected signature rejection")
	}
}

func TestResolveLoadsFreshRoles(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	repo := &stubRoleRepo{roles: map[string][]domain.Role{
		"user-1": {domain.RoleStaff},
	}}
	resolver := NewSessionResolver(tm, repo, zap.NewNop())

	token, _, err := tm.GenerateToken("user-1", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id := resolver.Resolve(context.Background(), token)
	if id.IsAnonymous() {
		t.Fatal("expected resolved identity")
	}
	if !id.IsStaffOnly() {
		t.Fatalf("roles = %v, want staff only", id.Roles)
	}
}

func TestResolveFailuresYieldAnonymous(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	repo := &stubRoleRepo{roles: map[string][]domain.Role{}}
	resolver := NewSessionResolver(tm, repo, zap.NewNop())

	if id := resolver.Resolve(context.Background(), ""); !id.IsAnonymous() {
		t.Fatal("empty token must resolve anonymous")
	}
	if id := resolver.Resolve(context.Background(), "not-a-jwt"); !id.IsAnonymous() {
		t.Fatal("garbage token must resolve anonymous")
	}

	token, _, err := tm.GenerateToken("user-1", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	repo.err = errors.New("role store down")
	if id := resolver.Resolve(context.Background(), token); !id.IsAnonymous() {
		t.Fatal("a failed role lookup must resolve anonymous")
	}
}
