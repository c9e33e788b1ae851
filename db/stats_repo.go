package db

import (
	"context"
	"fmt"

	"github.com/tfkr-ae/folio/domain"
)

var _ domain.StatsRepository = (*Repository)(nil)

// CountProjects returns the total number of projects.
func (repo *Repository) CountProjects(ctx context.Context) (int, error) {
	return repo.count(ctx, "project")
}

// CountContactSubmissions returns the total number of contact form submissions.
func (repo *Repository) CountContactSubmissions(ctx context.Context) (int, error) {
	return repo.count(ctx, "contact_submission")
}

// CountHireRequests returns the total number of hire requests.
func (repo *Repository) CountHireRequests(ctx context.Context) (int, error) {
	return repo.count(ctx, "hire_request")
}

// CountQuickLinks returns the total number of quick links.
func (repo *Repository) CountQuickLinks(ctx context.Context) (int, error) {
	return repo.count(ctx, "quick_link")
}

// count runs COUNT(*) on one of the fixed table names above.
func (repo *Repository) count(ctx context.Context, table string) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

	err := repo.dbConn.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("getting %s count: %w", table, err)
	}

	return count, nil
}
