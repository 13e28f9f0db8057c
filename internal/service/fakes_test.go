package service

import (
	"context"
	"errors"
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
)

var errNotFound = errors.New("not found")

func strPtr(s string) *string { return &s }

type fakeTicketRepo struct {
	tickets     []domain.Ticket
	byAssignee  []domain.Ticket
	listErr     error
	assigneeErr error
	updated     []domain.Ticket
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error { return nil }
func (f *fakeTicketRepo) Update(ctx context.Context, ticket *domain.Ticket) error {
	f.updated = append(f.updated, *ticket)
	for i := range f.tickets {
		if f.tickets[i].ID == ticket.ID {
			f.tickets[i] = *ticket
		}
	}
	return nil
}
func (f *fakeTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	for i := range f.tickets {
		if f.tickets[i].ID == id {
			t := f.tickets[i]
			return &t, nil
		}
	}
	return nil, errNotFound
}
func (f *fakeTicketRepo) List(ctx context.Context) ([]domain.Ticket, error) {
	return f.tickets, f.listErr
}
func (f *fakeTicketRepo) ListByAssignee(ctx context.Context, assigneeID string, statuses ...domain.TicketStatus) ([]domain.Ticket, error) {
	if f.assigneeErr != nil {
		return nil, f.assigneeErr
	}
	return f.byAssignee, nil
}
func (f *fakeTicketRepo) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Ticket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	allowed := map[string]bool{}
	for _, id := range clientIDs {
		allowed[id] = true
	}
	var out []domain.Ticket
	for _, t := range f.tickets {
		if t.ClientID != nil && allowed[*t.ClientID] {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTicketRepo) ListWithFilter(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return f.tickets, f.listErr
}

type fakeRoleRepo struct {
	roles   map[string]domain.RoleSet
	mapErr  error
	granted []domain.RoleAssignment
}

func (f *fakeRoleRepo) ListForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	var out []domain.Role
	for role := range f.roles[userID] {
		out = append(out, role)
	}
	return out, nil
}
func (f *fakeRoleRepo) RoleMap(ctx context.Context, userIDs []string) (map[string]domain.RoleSet, error) {
	if f.mapErr != nil {
		return nil, f.mapErr
	}
	out := make(map[string]domain.RoleSet, len(userIDs))
	for _, id := range userIDs {
		if set, ok := f.roles[id]; ok {
			out[id] = set
		}
	}
	return out, nil
}
func (f *fakeRoleRepo) Grant(ctx context.Context, userID string, role domain.Role) error {
	f.granted = append(f.granted, domain.RoleAssignment{UserID: userID, Role: role})
	return nil
}
func (f *fakeRoleRepo) Revoke(ctx context.Context, userID string, role domain.Role) error {
	return nil
}

type fakeQuoteRepo struct {
	quotes       map[string]*domain.Quote
	pendingCount int
	listErr      error
	updateErr    error
	updated      []domain.Quote
}

func (f *fakeQuoteRepo) Create(ctx context.Context, quote *domain.Quote) error { return nil }
func (f *fakeQuoteRepo) Update(ctx context.Context, quote *domain.Quote) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, *quote)
	f.quotes[quote.ID] = quote
	return nil
}
func (f *fakeQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	if quote, ok := f.quotes[id]; ok {
		copied := *quote
		return &copied, nil
	}
	return nil, errNotFound
}
func (f *fakeQuoteRepo) List(ctx context.Context) ([]domain.Quote, error) {
	var out []domain.Quote
	for _, quote := range f.quotes {
		out = append(out, *quote)
	}
	return out, nil
}
func (f *fakeQuoteRepo) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Quote, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	allowed := map[string]bool{}
	for _, id := range clientIDs {
		allowed[id] = true
	}
	var out []domain.Quote
	for _, quote := range f.quotes {
		if quote.ClientID != nil && allowed[*quote.ClientID] {
			out = append(out, *quote)
		}
	}
	return out, nil
}
func (f *fakeQuoteRepo) CountPendingByClientIDs(ctx context.Context, clientIDs []string) (int, error) {
	return f.pendingCount, nil
}

type fakeProjectRepo struct {
	created   []domain.Project
	openCount int
	countErr  error
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = "project-" + project.Name
	f.created = append(f.created, *project)
	return nil
}
func (f *fakeProjectRepo) Update(ctx context.Context, project *domain.Project) error { return nil }
func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return nil, errNotFound
}
func (f *fakeProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	return f.created, nil
}
func (f *fakeProjectRepo) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Project, error) {
	return f.created, nil
}
func (f *fakeProjectRepo) CountOpenByIDs(ctx context.Context, ids []string) (int, error) {
	return f.openCount, f.countErr
}

type fakeInvoiceRepo struct {
	invoices []domain.Invoice
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error { return nil }
func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *domain.Invoice) error { return nil }
func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			inv := f.invoices[i]
			return &inv, nil
		}
	}
	return nil, errNotFound
}
func (f *fakeInvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	return f.invoices, nil
}
func (f *fakeInvoiceRepo) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Invoice, error) {
	allowed := map[string]bool{}
	for _, id := range clientIDs {
		allowed[id] = true
	}
	var out []domain.Invoice
	for _, invoice := range f.invoices {
		if invoice.ClientID != nil && allowed[*invoice.ClientID] {
			out = append(out, invoice)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	updated  []domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) error { return nil }
func (f *fakeBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	f.updated = append(f.updated, *booking)
	f.bookings[booking.ID] = booking
	return nil
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if booking, ok := f.bookings[id]; ok {
		copied := *booking
		return &copied, nil
	}
	return nil, errNotFound
}
func (f *fakeBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, booking := range f.bookings {
		out = append(out, *booking)
	}
	return out, nil
}
func (f *fakeBookingRepo) ListByClientIDs(ctx context.Context, clientIDs []string) ([]domain.Booking, error) {
	allowed := map[string]bool{}
	for _, id := range clientIDs {
		allowed[id] = true
	}
	var out []domain.Booking
	for _, booking := range f.bookings {
		if booking.ClientID != nil && allowed[*booking.ClientID] {
			out = append(out, *booking)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts    []domain.Account
	recentCount int
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error { return nil }
func (f *fakeAccountRepo) Update(ctx context.Context, account *domain.Account) error { return nil }
func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			acct := f.accounts[i]
			return &acct, nil
		}
	}
	return nil, errNotFound
}
func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].Email == email {
			acct := f.accounts[i]
			return &acct, nil
		}
	}
	return nil, errNotFound
}
func (f *fakeAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	return f.accounts, nil
}
func (f *fakeAccountRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Account, error) {
	allowed := map[string]bool{}
	for _, id := range ids {
		allowed[id] = true
	}
	var out []domain.Account
	for _, account := range f.accounts {
		if allowed[account.ID] {
			out = append(out, account)
		}
	}
	return out, nil
}
func (f *fakeAccountRepo) CountCreatedSince(ctx context.Context, ids []string, since time.Time) (int, error) {
	return f.recentCount, nil
}

type fakeContentRepo struct {
	items map[string]*domain.ContentItem
	flips []bool
}

func (f *fakeContentRepo) ListByKind(ctx context.Context, kind domain.ContentKind, publishedOnly bool) ([]domain.ContentItem, error) {
	var out []domain.ContentItem
	for _, item := range f.items {
		if item.Kind != kind {
			continue
		}
		if publishedOnly && !item.IsPublished() {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}
func (f *fakeContentRepo) GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	if item, ok := f.items[id]; ok && item.Kind == kind {
		copied := *item
		return &copied, nil
	}
	return nil, errNotFound
}
func (f *fakeContentRepo) SetPublished(ctx context.Context, kind domain.ContentKind, id string, published bool) error {
	item, ok := f.items[id]
	if !ok {
		return errNotFound
	}
	item.Published = &published
	f.flips = append(f.flips, published)
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
