package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
)

func TestDashboardCountsZeroWhenNoActiveTickets(t *testing.T) {
	projects := &fakeProjectRepo{openCount: 99, countErr: errors.New("must not be queried")}
	svc := NewDashboardService(DashboardDependencies{
		TicketRepo:  &fakeTicketRepo{},
		ProjectRepo: projects,
		QuoteRepo:   &fakeQuoteRepo{pendingCount: 99},
		AccountRepo: &fakeAccountRepo{recentCount: 99},
	})

	counts, err := svc.Counts(context.Background(), staffScope("staff-1"))
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts != (DashboardCounts{}) {
		t.Fatalf("expected all-zero counts without further queries, got %+v", counts)
	}
}

func TestDashboardCountsAggregatesFromAssignedTickets(t *testing.T) {
	tickets := &fakeTicketRepo{byAssignee: []domain.Ticket{
		{ID: "t1", ClientID: strPtr("client-1"), ProjectID: strPtr("p1"), Status: domain.TicketStatusOpen},
		{ID: "t2", ClientID: strPtr("client-1"), Status: domain.TicketStatusInProgress},
		{ID: "t3", ClientID: strPtr("client-2"), ProjectID: strPtr("p2"), Status: domain.TicketStatusOpen},
	}}
	svc := NewDashboardService(DashboardDependencies{
		TicketRepo:  tickets,
		ProjectRepo: &fakeProjectRepo{openCount: 2},
		QuoteRepo:   &fakeQuoteRepo{pendingCount: 3},
		AccountRepo: &fakeAccountRepo{recentCount: 1},
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	counts, err := svc.Counts(context.Background(), staffScope("staff-1"))
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	want := DashboardCounts{AssignedTickets: 3, OpenProjects: 2, PendingQuotes: 3, RecentClients: 1}
	if counts != want {
		t.Fatalf("counts = %+v, want %+v", counts, want)
	}
}

func TestDashboardCountsTicketQueryFailure(t *testing.T) {
	tickets := &fakeTicketRepo{assigneeErr: errors.New("backend down")}
	svc := NewDashboardService(DashboardDependencies{
		TicketRepo:  tickets,
		ProjectRepo: &fakeProjectRepo{},
		QuoteRepo:   &fakeQuoteRepo{},
		AccountRepo: &fakeAccountRepo{},
	})

	if _, err := svc.Counts(context.Background(), staffScope("staff-1")); err == nil {
		t.Fatal("expected error when the assigned-ticket query fails")
	}
}
