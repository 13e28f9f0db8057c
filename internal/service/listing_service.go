package service

import (
	"context"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// ListingService executes scoped listings for the back-office views. Admin
// callers get each entity's base listing untouched; staff-only callers get
// rows whose owning client is inside their scope AND still holds exactly the
// client role. Any ambiguity excludes rows rather than including them.
type ListingService struct {
	tickets  repository.TicketRepository
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	bookings repository.BookingRepository
	projects repository.ProjectRepository
	accounts repository.AccountRepository
	roles    repository.RoleRepository
}

// ListingDependencies bundles repositories for the listing service.
type ListingDependencies struct {
	TicketRepo  repository.TicketRepository
	QuoteRepo   repository.QuoteRepository
	InvoiceRepo repository.InvoiceRepository
	BookingRepo repository.BookingRepository
	ProjectRepo repository.ProjectRepository
	AccountRepo repository.AccountRepository
	RoleRepo    repository.RoleRepository
}

// NewListingService constructs the service.
func NewListingService(deps ListingDependencies) *ListingService {
	return &ListingService{
		tickets:  deps.TicketRepo,
		quotes:   deps.QuoteRepo,
		invoices: deps.InvoiceRepo,
		bookings: deps.BookingRepo,
		projects: deps.ProjectRepo,
		accounts: deps.AccountRepo,
		roles:    deps.RoleRepo,
	}
}

// ListTickets returns tickets visible to the caller, newest first.
func (s *ListingService) ListTickets(ctx context.Context, sc scope.Scope) ([]domain.Ticket, error) {
	if sc.IsAdmin {
		tickets, err := s.tickets.List(ctx)
		return tickets, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Ticket{}, nil
	}
	tickets, err := s.tickets.ListByClientIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	visible, err := s.currentClients(ctx, ticketClientIDs(tickets))
	if err != nil {
		return nil, err
	}
	filtered := tickets[:0]
	for _, ticket := range tickets {
		if ticket.ClientID != nil && visible[*ticket.ClientID] {
			filtered = append(filtered, ticket)
		}
	}
	return filtered, nil
}

// ListQuotes returns quotes visible to the caller, newest first.
func (s *ListingService) ListQuotes(ctx context.Context, sc scope.Scope) ([]domain.Quote, error) {
	if sc.IsAdmin {
		quotes, err := s.quotes.List(ctx)
		return quotes, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Quote{}, nil
	}
	quotes, err := s.quotes.ListByClientIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ids := make([]string, 0, len(quotes))
	for _, quote := range quotes {
		if quote.ClientID != nil {
			ids = append(ids, *quote.ClientID)
		}
	}
	visible, err := s.currentClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	filtered := quotes[:0]
	for _, quote := range quotes {
		if quote.ClientID != nil && visible[*quote.ClientID] {
			filtered = append(filtered, quote)
		}
	}
	return filtered, nil
}

// ListInvoices returns invoices visible to the caller, newest first.
func (s *ListingService) ListInvoices(ctx context.Context, sc scope.Scope) ([]domain.Invoice, error) {
	if sc.IsAdmin {
		invoices, err := s.invoices.List(ctx)
		return invoices, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Invoice{}, nil
	}
	invoices, err := s.invoices.ListByClientIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ids := make([]string, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.ClientID != nil {
			ids = append(ids, *invoice.ClientID)
		}
	}
	visible, err := s.currentClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	filtered := invoices[:0]
	for _, invoice := range invoices {
		if invoice.ClientID != nil && visible[*invoice.ClientID] {
			filtered = append(filtered, invoice)
		}
	}
	return filtered, nil
}

// ListBookings returns bookings visible to the caller, soonest first.
func (s *ListingService) ListBookings(ctx context.Context, sc scope.Scope) ([]domain.Booking, error) {
	if sc.IsAdmin {
		bookings, err := s.bookings.List(ctx)
		return bookings, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Booking{}, nil
	}
	bookings, err := s.bookings.ListByClientIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ids := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		if booking.ClientID != nil {
			ids = append(ids, *booking.ClientID)
		}
	}
	visible, err := s.currentClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	filtered := bookings[:0]
	for _, booking := range bookings {
		if booking.ClientID != nil && visible[*booking.ClientID] {
			filtered = append(filtered, booking)
		}
	}
	return filtered, nil
}

// ListProjects returns projects visible to the caller, newest first.
func (s *ListingService) ListProjects(ctx context.Context, sc scope.Scope) ([]domain.Project, error) {
	if sc.IsAdmin {
		projects, err := s.projects.List(ctx)
		return projects, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Project{}, nil
	}
	projects, err := s.projects.ListByClientIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		if project.ClientID != nil {
			ids = append(ids, *project.ClientID)
		}
	}
	visible, err := s.currentClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	filtered := projects[:0]
	for _, project := range projects {
		if project.ClientID != nil && visible[*project.ClientID] {
			filtered = append(filtered, project)
		}
	}
	return filtered, nil
}

// ListClients returns client accounts visible to the caller. Admins see
// every profile; staff see the accounts inside their scope that still hold
// exactly the client role.
func (s *ListingService) ListClients(ctx context.Context, sc scope.Scope) ([]domain.Account, error) {
	if sc.IsAdmin {
		accounts, err := s.accounts.List(ctx)
		return accounts, apperrors.MapError(err)
	}
	if !sc.IsStaffOnly {
		return nil, apperrors.NewForbidden("staff or admin role required")
	}
	if sc.OwnsNothing() {
		return []domain.Account{}, nil
	}
	accounts, err := s.accounts.ListByIDs(ctx, sc.ClientIDs())
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}
	visible, err := s.currentClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	filtered := accounts[:0]
	for _, account := range accounts {
		if visible[account.ID] {
			filtered = append(filtered, account)
		}
	}
	return filtered, nil
}

// currentClients loads a fresh role map and reports which of the given IDs
// currently hold exactly the client role. A failed lookup propagates as an
// error so no row is shown on stale or missing role data.
func (s *ListingService) currentClients(ctx context.Context, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}
	roleMap, err := s.roles.RoleMap(ctx, ids)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	visible := make(map[string]bool, len(ids))
	for _, id := range ids {
		if set, ok := roleMap[id]; ok && set.IsExactlyClient() {
			visible[id] = true
		}
	}
	return visible, nil
}

func ticketClientIDs(tickets []domain.Ticket) []string {
	ids := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		if ticket.ClientID != nil {
			ids = append(ids, *ticket.ClientID)
		}
	}
	return ids
}
