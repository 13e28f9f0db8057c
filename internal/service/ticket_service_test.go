package service

import (
	"context"
	"testing"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
)

func newTicketFixture() (*TicketService, *fakeTicketRepo, *fakeRoleRepo, *recordingDispatcher) {
	tickets := &fakeTicketRepo{tickets: []domain.Ticket{
		{ID: "t1", ClientID: strPtr("client-1"), Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityMedium},
	}}
	roles := &fakeRoleRepo{roles: map[string]domain.RoleSet{
		"staff-1":  domain.NewRoleSet([]domain.Role{domain.RoleStaff}),
		"client-1": domain.NewRoleSet([]domain.Role{domain.RoleClient}),
	}}
	dispatcher := &recordingDispatcher{}
	return NewTicketService(tickets, roles, dispatcher), tickets, roles, dispatcher
}

func TestTicketUpdateStatus(t *testing.T) {
	svc, tickets, _, dispatcher := newTicketFixture()

	ticket, err := svc.UpdateStatus(context.Background(), "admin-1", "t1", domain.TicketStatusResolved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if ticket.Status != domain.TicketStatusResolved {
		t.Fatalf("status = %q", ticket.Status)
	}
	if len(tickets.updated) != 1 {
		t.Fatalf("expected one write, got %d", len(tickets.updated))
	}
	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventTicketStatusChanged {
		t.Fatalf("expected a status-changed event, got %#v", dispatcher.published)
	}
}

func TestTicketUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, tickets, _, _ := newTicketFixture()

	if _, err := svc.UpdateStatus(context.Background(), "admin-1", "t1", "parked"); err == nil {
		t.Fatal("expected validation error")
	}
	if len(tickets.updated) != 0 {
		t.Fatal("no write may reach the repository")
	}
}

func TestTicketAssignRequiresStaffRole(t *testing.T) {
	svc, tickets, _, _ := newTicketFixture()

	if _, err := svc.Assign(context.Background(), "admin-1", "t1", strPtr("client-1")); err == nil {
		t.Fatal("expected rejection when the assignee holds no staff role")
	}
	if len(tickets.updated) != 0 {
		t.Fatal("no write may happen for an invalid assignee")
	}

	ticket, err := svc.Assign(context.Background(), "admin-1", "t1", strPtr("staff-1"))
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if ticket.AssignedTo == nil || *ticket.AssignedTo != "staff-1" {
		t.Fatalf("assigned_to = %v", ticket.AssignedTo)
	}
}

func TestTicketAssignNilUnassigns(t *testing.T) {
	svc, tickets, _, _ := newTicketFixture()
	tickets.tickets[0].AssignedTo = strPtr("staff-1")

	ticket, err := svc.Assign(context.Background(), "admin-1", "t1", nil)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if ticket.AssignedTo != nil {
		t.Fatalf("expected unassigned ticket, got %v", *ticket.AssignedTo)
	}
}

func TestTicketAttachAndDetachProject(t *testing.T) {
	svc, _, _, _ := newTicketFixture()

	ticket, err := svc.AttachProject(context.Background(), "admin-1", "t1", strPtr("p1"))
	if err != nil {
		t.Fatalf("AttachProject: %v", err)
	}
	if ticket.ProjectID == nil || *ticket.ProjectID != "p1" {
		t.Fatalf("project_id = %v", ticket.ProjectID)
	}

	ticket, err = svc.AttachProject(context.Background(), "admin-1", "t1", nil)
	if err != nil {
		t.Fatalf("AttachProject: %v", err)
	}
	if ticket.ProjectID != nil {
		t.Fatal("expected project detached")
	}
}
