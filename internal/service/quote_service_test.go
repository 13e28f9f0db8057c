package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/events"
)

func newConvertFixture() (*QuoteService, *fakeQuoteRepo, *fakeProjectRepo, *recordingDispatcher) {
	quotes := &fakeQuoteRepo{quotes: map[string]*domain.Quote{
		"q1": {
			ID:            "q1",
			ClientID:      strPtr("client-1"),
			Title:         "Website revamp",
			Description:   "Full redesign",
			EstimatedCost: 50000,
			Status:        domain.QuoteStatusPending,
		},
	}}
	projects := &fakeProjectRepo{}
	dispatcher := &recordingDispatcher{}
	svc := NewQuoteService(quotes, projects, dispatcher, zap.NewNop())
	return svc, quotes, projects, dispatcher
}

func TestConvertToProject(t *testing.T) {
	svc, quotes, projects, dispatcher := newConvertFixture()

	project, quote, err := svc.ConvertToProject(context.Background(), "admin-1", "q1")
	if err != nil {
		t.Fatalf("ConvertToProject: %v", err)
	}

	if len(projects.created) != 1 {
		t.Fatalf("expected one project created, got %d", len(projects.created))
	}
	if project.Name != "Website revamp" {
		t.Fatalf("project name = %q", project.Name)
	}
	if project.Budget != 500.00 {
		t.Fatalf("budget = %v, want 500.00 rupees from 50000 paise", project.Budget)
	}
	if project.Status != domain.ProjectStatusDiscovery {
		t.Fatalf("status = %q, want discovery", project.Status)
	}

	if quote.Status != domain.QuoteStatusApproved {
		t.Fatalf("quote status = %q, want approved", quote.Status)
	}
	if got := quote.Metadata["project_id"]; got != project.ID {
		t.Fatalf("metadata project_id = %v, want %s", got, project.ID)
	}
	stored := quotes.quotes["q1"]
	if stored.Status != domain.QuoteStatusApproved {
		t.Fatalf("stored quote status = %q", stored.Status)
	}

	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventQuoteConverted {
		t.Fatalf("expected one quote-converted event, got %#v", dispatcher.published)
	}
}

func TestConvertToProjectFallsBackToGeneratedName(t *testing.T) {
	svc, quotes, _, _ := newConvertFixture()
	quotes.quotes["q1"].Title = "  "

	project, _, err := svc.ConvertToProject(context.Background(), "admin-1", "q1")
	if err != nil {
		t.Fatalf("ConvertToProject: %v", err)
	}
	if project.Name != "Project from quote q1" {
		t.Fatalf("project name = %q", project.Name)
	}
}

func TestConvertToProjectQuoteUpdateFailureLeavesOrphan(t *testing.T) {
	svc, quotes, projects, dispatcher := newConvertFixture()
	quotes.updateErr = errors.New("write timeout")

	_, _, err := svc.ConvertToProject(context.Background(), "admin-1", "q1")
	if err == nil {
		t.Fatal("expected error when the quote write fails")
	}
	if len(projects.created) != 1 {
		t.Fatalf("expected the project insert to have happened, got %d", len(projects.created))
	}
	if quotes.quotes["q1"].Status != domain.QuoteStatusPending {
		t.Fatalf("quote must stay pending, got %q", quotes.quotes["q1"].Status)
	}
	if len(dispatcher.published) != 0 {
		t.Fatalf("no event should fire on a failed conversion, got %#v", dispatcher.published)
	}
}

func TestUpdateQuoteStatusRejectsUnknownValue(t *testing.T) {
	svc, quotes, _, _ := newConvertFixture()

	if _, err := svc.UpdateStatus(context.Background(), "admin-1", "q1", "maybe"); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if len(quotes.updated) != 0 {
		t.Fatalf("no write should reach the repository, got %d", len(quotes.updated))
	}
}
