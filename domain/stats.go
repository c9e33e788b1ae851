package domain

import "context"

// StatsRepository defines the interface for counting stored records.
// It backs the health endpoint.
type StatsRepository interface {
	// CountProjects returns the total number of projects.
	CountProjects(ctx context.Context) (int, error)
	// CountContactSubmissions returns the total number of contact form submissions.
	CountContactSubmissions(ctx context.Context) (int, error)
	// CountHireRequests returns the total number of hire requests.
	CountHireRequests(ctx context.Context) (int, error)
	// CountQuickLinks returns the total number of quick links.
	CountQuickLinks(ctx context.Context) (int, error)
}

// Stats is a snapshot of record counts.
type Stats struct {
	Projects           int `json:"projects"`
	ContactSubmissions int `json:"contact_submissions"`
	HireRequests       int `json:"hire_requests"`
	QuickLinks         int `json:"quick_links"`
}
