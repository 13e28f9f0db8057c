package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

func staffScope(userID string, clientIDs ...string) scope.Scope {
	owned := map[string]struct{}{}
	for _, id := range clientIDs {
		owned[id] = struct{}{}
	}
	return scope.Scope{
		UserID:          userID,
		IsStaffOnly:     true,
		OwnedClientIDs:  owned,
		OwnedProjectIDs: map[string]struct{}{},
	}
}

func adminScope(userID string) scope.Scope {
	return scope.Scope{
		UserID:          userID,
		IsAdmin:         true,
		OwnedClientIDs:  map[string]struct{}{},
		OwnedProjectIDs: map[string]struct{}{},
	}
}

func newListingFixture() (*ListingService, *fakeRoleRepo, *fakeQuoteRepo, *fakeTicketRepo) {
	roles := &fakeRoleRepo{roles: map[string]domain.RoleSet{
		"client-1": domain.NewRoleSet([]domain.Role{domain.RoleClient}),
		"client-2": domain.NewRoleSet([]domain.Role{domain.RoleClient, domain.RoleStaff}),
	}}
	quotes := &fakeQuoteRepo{quotes: map[string]*domain.Quote{
		"q1": {ID: "q1", ClientID: strPtr("client-1"), Status: domain.QuoteStatusPending},
		"q2": {ID: "q2", ClientID: strPtr("client-2"), Status: domain.QuoteStatusPending},
	}}
	tickets := &fakeTicketRepo{tickets: []domain.Ticket{
		{ID: "t1", ClientID: strPtr("client-1"), Status: domain.TicketStatusOpen},
		{ID: "t2", ClientID: strPtr("client-2"), Status: domain.TicketStatusOpen},
	}}
	svc := NewListingService(ListingDependencies{
		TicketRepo:  tickets,
		QuoteRepo:   quotes,
		InvoiceRepo: &fakeInvoiceRepo{},
		BookingRepo: &fakeBookingRepo{bookings: map[string]*domain.Booking{}},
		ProjectRepo: &fakeProjectRepo{},
		AccountRepo: &fakeAccountRepo{accounts: []domain.Account{
			{ID: "client-1", Email: "one@example.com"},
			{ID: "client-2", Email: "two@example.com"},
		}},
		RoleRepo: roles,
	})
	return svc, roles, quotes, tickets
}

func TestListQuotesAdminUnrestricted(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	quotes, err := svc.ListQuotes(context.Background(), adminScope("admin-1"))
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected admin to see 2 quotes, got %d", len(quotes))
	}
}

func TestListQuotesRequiresBackOfficeRole(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	sc := scope.Scope{UserID: "client-1", OwnedClientIDs: map[string]struct{}{}}
	_, err := svc.ListQuotes(context.Background(), sc)
	if err == nil {
		t.Fatal("expected forbidden error for non-staff caller")
	}
	if apperrors.ToDomainError(err).Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestListQuotesEmptyScopeShortCircuits(t *testing.T) {
	svc, _, quotes, _ := newListingFixture()
	quotes.listErr = errors.New("must not be queried")

	got, err := svc.ListQuotes(context.Background(), staffScope("staff-1"))
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListQuotesExcludesPromotedAccounts(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	quotes, err := svc.ListQuotes(context.Background(), staffScope("staff-1", "client-1", "client-2"))
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if len(quotes) != 1 || quotes[0].ID != "q1" {
		t.Fatalf("expected only client-1's quote; client-2 holds staff now, got %#v", quotes)
	}
}

func TestListQuotesRoleLookupFailureHidesRows(t *testing.T) {
	svc, roles, _, _ := newListingFixture()
	roles.mapErr = errors.New("role store down")

	_, err := svc.ListQuotes(context.Background(), staffScope("staff-1", "client-1"))
	if err == nil {
		t.Fatal("expected error when role map cannot be loaded")
	}
}

func TestListTicketsScopedToOwnedClients(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	tickets, err := svc.ListTickets(context.Background(), staffScope("staff-1", "client-1"))
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != "t1" {
		t.Fatalf("expected only ticket t1 in scope, got %#v", tickets)
	}
}

func TestListClientsKeepsOnlyExactClients(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	accounts, err := svc.ListClients(context.Background(), staffScope("staff-1", "client-1", "client-2"))
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(accounts) != 1 || accounts[0].ID != "client-1" {
		t.Fatalf("expected the promoted account filtered out, got %#v", accounts)
	}
}
