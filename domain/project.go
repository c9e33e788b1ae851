package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProjectSource records how a project entered the portfolio.
type ProjectSource string

const (
	// SourceManual is a project submitted through the projects endpoint.
	SourceManual ProjectSource = "manual"
	// SourceGitHubImported is a project imported from a GitHub repository listing.
	SourceGitHubImported ProjectSource = "github-imported"
)

// ProjectRepository defines the persistence contract for portfolio projects.
// Projects are append-only from the public API.
type ProjectRepository interface {
	// InsertProject stores a new project. ID and timestamps must already be set.
	InsertProject(ctx context.Context, project *Project) error

	// GetProjects returns projects ordered newest-created first.
	// A limit of zero or less returns every project.
	GetProjects(ctx context.Context, limit int) ([]*Project, error)

	// GetProjectByID returns a single project, or an error wrapping ErrNotFound.
	GetProjectByID(ctx context.Context, id uuid.UUID) (*Project, error)
}

// Project is a single portfolio listing.
type Project struct {
	ID          uuid.UUID     `json:"id"`          // Unique identifier for the project.
	Title       string        `json:"title"`       // Display title, at least 5 characters.
	Description string        `json:"description"` // Free text description, at least 10 characters.
	TechStack   string        `json:"tech_stack"`  // Comma separated technology tags.
	GitHubURL   *string       `json:"github_url"`  // Optional source repository URL.
	DemoURL     *string       `json:"demo_url"`    // Optional live demo URL.
	Image       *string       `json:"image"`       // Optional image reference.
	Source      ProjectSource `json:"source"`      // How the project was created.
	CreatedAt   time.Time     `json:"created_at"`  // Assigned once by the server.
	UpdatedAt   time.Time     `json:"updated_at"`  // Assigned by the server on every write.
}
