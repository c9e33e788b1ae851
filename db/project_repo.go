package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
)

var _ domain.ProjectRepository = (*Repository)(nil)

// dbProject represents a project as stored in the database.
type dbProject struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	TechStack   string         `db:"tech_stack"`
	GitHubURL   sql.NullString `db:"github_url"`
	DemoURL     sql.NullString `db:"demo_url"`
	Image       sql.NullString `db:"image"`
	Source      string         `db:"source"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// toDomainProject converts a dbProject to a domain.Project.
func toDomainProject(dbProject *dbProject) *domain.Project {
	return &domain.Project{
		ID:          dbProject.ID,
		Title:       dbProject.Title,
		Description: dbProject.Description,
		TechStack:   dbProject.TechStack,
		GitHubURL:   fromNullString(dbProject.GitHubURL),
		DemoURL:     fromNullString(dbProject.DemoURL),
		Image:       fromNullString(dbProject.Image),
		Source:      domain.ProjectSource(dbProject.Source),
		CreatedAt:   dbProject.CreatedAt,
		UpdatedAt:   dbProject.UpdatedAt,
	}
}

// fromDomainProject converts a domain.Project to a dbProject.
func fromDomainProject(project *domain.Project) *dbProject {
	return &dbProject{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		TechStack:   project.TechStack,
		GitHubURL:   toNullString(project.GitHubURL),
		DemoURL:     toNullString(project.DemoURL),
		Image:       toNullString(project.Image),
		Source:      string(project.Source),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// InsertProject stores a new project.
func (repo *Repository) InsertProject(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO project (id, title, description, tech_stack, github_url, demo_url, image, source, created_at, updated_at)
	          VALUES (:id, :title, :description, :tech_stack, :github_url, :demo_url, :image, :source, :created_at, :updated_at)`

	_, err := repo.dbConn.NamedExecContext(ctx, query, fromDomainProject(project))
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", project.ID, err)
	}
	return nil
}

// GetProjects retrieves projects, newest first.
func (repo *Repository) GetProjects(ctx context.Context, limit int) ([]*domain.Project, error) {
	var dbProjects []*dbProject
	query := `SELECT id, title, description, tech_stack, github_url, demo_url, image, source, created_at, updated_at
	          FROM project
	          ORDER BY created_at DESC, id DESC` + limitClause(limit)

	err := repo.dbConn.SelectContext(ctx, &dbProjects, query)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	projects := make([]*domain.Project, len(dbProjects))
	for i, dbProject := range dbProjects {
		projects[i] = toDomainProject(dbProject)
	}
	return projects, nil
}

// GetProjectByID retrieves a single project.
func (repo *Repository) GetProjectByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var dbProject dbProject
	query := `SELECT id, title, description, tech_stack, github_url, demo_url, image, source, created_at, updated_at
	          FROM project WHERE id = ?`

	err := repo.dbConn.GetContext(ctx, &dbProject, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("getting project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}
	return toDomainProject(&dbProject), nil
}
