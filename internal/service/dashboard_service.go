package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// recentClientWindow bounds the "recent clients" dashboard counter.
const recentClientWindow = 7 * 24 * time.Hour

// DashboardCounts are the staff dashboard tiles. Pure projection, no writes.
type DashboardCounts struct {
	AssignedTickets int `json:"assigned_tickets"`
	OpenProjects    int `json:"open_projects"`
	PendingQuotes   int `json:"pending_quotes"`
	RecentClients   int `json:"recent_clients"`
}

// DashboardService aggregates counters for the caller's workload view.
type DashboardService struct {
	tickets  repository.TicketRepository
	projects repository.ProjectRepository
	quotes   repository.QuoteRepository
	accounts repository.AccountRepository
	now      func() time.Time
}

// DashboardDependencies bundles repositories for the dashboard service.
type DashboardDependencies struct {
	TicketRepo  repository.TicketRepository
	ProjectRepo repository.ProjectRepository
	QuoteRepo   repository.QuoteRepository
	AccountRepo repository.AccountRepository
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		tickets:  deps.TicketRepo,
		projects: deps.ProjectRepo,
		quotes:   deps.QuoteRepo,
		accounts: deps.AccountRepo,
		now:      time.Now,
	}
}

// Counts derives the dashboard tiles from the caller's active assigned
// tickets. The three downstream counters fan out concurrently; when the
// ticket set yields no client or project IDs they are all zero without
// issuing further queries.
func (s *DashboardService) Counts(ctx context.Context, sc scope.Scope) (DashboardCounts, error) {
	tickets, err := s.tickets.ListByAssignee(ctx, sc.UserID,
		domain.TicketStatusOpen, domain.TicketStatusInProgress)
	if err != nil {
		return DashboardCounts{}, apperrors.MapError(err)
	}

	counts := DashboardCounts{AssignedTickets: len(tickets)}

	clientSet := map[string]struct{}{}
	projectSet := map[string]struct{}{}
	for _, ticket := range tickets {
		if ticket.ClientID != nil && *ticket.ClientID != "" {
			clientSet[*ticket.ClientID] = struct{}{}
		}
		if ticket.ProjectID != nil && *ticket.ProjectID != "" {
			projectSet[*ticket.ProjectID] = struct{}{}
		}
	}
	if len(clientSet) == 0 && len(projectSet) == 0 {
		return counts, nil
	}

	clientIDs := make([]string, 0, len(clientSet))
	for id := range clientSet {
		clientIDs = append(clientIDs, id)
	}
	projectIDs := make([]string, 0, len(projectSet))
	for id := range projectSet {
		projectIDs = append(projectIDs, id)
	}

	since := s.now().Add(-recentClientWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.projects.CountOpenByIDs(gctx, projectIDs)
		if err != nil {
			return err
		}
		counts.OpenProjects = n
		return nil
	})
	g.Go(func() error {
		n, err := s.quotes.CountPendingByClientIDs(gctx, clientIDs)
		if err != nil {
			return err
		}
		counts.PendingQuotes = n
		return nil
	})
	g.Go(func() error {
		n, err := s.accounts.CountCreatedSince(gctx, clientIDs, since)
		if err != nil {
			return err
		}
		counts.RecentClients = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardCounts{}, apperrors.MapError(err)
	}
	return counts, nil
}
