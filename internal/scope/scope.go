package scope

import (
	"context"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
)

// Scope is a caller's visibility boundary, recomputed per request and never
// persisted. For staff it holds the client and project IDs reached through
// tickets assigned to them; ticket assignment is the single source of
// ownership truth.
type Scope struct {
	UserID          string
	IsAdmin         bool
	IsStaffOnly     bool
	OwnedClientIDs  map[string]struct{}
	OwnedProjectIDs map[string]struct{}
}

// OwnsClient reports whether the client falls inside the boundary.
func (s Scope) OwnsClient(clientID string) bool {
	_, ok := s.OwnedClientIDs[clientID]
	return ok
}

// OwnsNothing reports an empty client boundary. For staff this means every
// scoped view is empty; it is never a fallback to unrestricted access.
func (s Scope) OwnsNothing() bool {
	return len(s.OwnedClientIDs) == 0
}

// ClientIDs returns the owned client IDs as a slice for IN-list queries.
func (s Scope) ClientIDs() []string {
	ids := make([]string, 0, len(s.OwnedClientIDs))
	for id := range s.OwnedClientIDs {
		ids = append(ids, id)
	}
	return ids
}

// ProjectIDs returns the owned project IDs as a slice.
func (s Scope) ProjectIDs() []string {
	ids := make([]string, 0, len(s.OwnedProjectIDs))
	for id := range s.OwnedProjectIDs {
		ids = append(ids, id)
	}
	return ids
}

// Resolver derives a Scope from an identity.
type Resolver struct {
	tickets repository.TicketRepository
	logger  *zap.Logger
}

// NewResolver constructs the resolver.
func NewResolver(tickets repository.TicketRepository, logger *zap.Logger) *Resolver {
	return &Resolver{tickets: tickets, logger: logger}
}

// Derive computes the caller's visibility boundary. Admins short-circuit to
// unrestricted; staff collect client/project IDs from their assigned
// tickets. A failed ticket query leaves the owned sets empty (fail-closed),
// it does not surface as an error to the caller.
func (r *Resolver) Derive(ctx context.Context, identity auth.Identity) Scope {
	s := Scope{
		UserID:          identity.UserID,
		IsAdmin:         identity.IsAdmin(),
		IsStaffOnly:     identity.IsStaffOnly(),
		OwnedClientIDs:  map[string]struct{}{},
		OwnedProjectIDs: map[string]struct{}{},
	}
	if s.IsAdmin || !s.IsStaffOnly {
		return s
	}

	tickets, err := r.tickets.ListByAssignee(ctx, identity.UserID)
	if err != nil {
		r.logger.Warn("scope derivation query failed; owned set stays empty",
			zap.String("user_id", identity.UserID), zap.Error(err))
		return s
	}

	for _, ticket := range tickets {
		if ticket.ClientID != nil && *ticket.ClientID != "" {
			s.OwnedClientIDs[*ticket.ClientID] = struct{}{}
		}
		if ticket.ProjectID != nil && *ticket.ProjectID != "" {
			s.OwnedProjectIDs[*ticket.ProjectID] = struct{}{}
		}
	}
	return s
}
