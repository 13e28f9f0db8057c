package domain

import "time"

// ProjectStatus enumerates delivery phases.
type ProjectStatus string

const (
	ProjectStatusDiscovery   ProjectStatus = "discovery"
	ProjectStatusPlanning    ProjectStatus = "planning"
	ProjectStatusDevelopment ProjectStatus = "development"
	ProjectStatusReview      ProjectStatus = "review"
	ProjectStatusCompleted   ProjectStatus = "completed"
	ProjectStatusOnHold      ProjectStatus = "on_hold"
)

// OpenProjectStatuses are the phases counted as in-flight on the dashboard.
var OpenProjectStatuses = []ProjectStatus{
	ProjectStatusDiscovery,
	ProjectStatusPlanning,
	ProjectStatusDevelopment,
	ProjectStatusReview,
}

// Project represents an engagement delivered for a client. Budget is held in
// rupees; quotes carry their estimate in paise and convert on acceptance.
type Project struct {
	ID          string
	ClientID    *string
	Name        string
	Description string
	Budget      float64
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidProjectStatus reports membership in the status enum.
func ValidProjectStatus(status ProjectStatus) bool {
	switch status {
	case ProjectStatusDiscovery, ProjectStatusPlanning, ProjectStatusDevelopment,
		ProjectStatusReview, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}
