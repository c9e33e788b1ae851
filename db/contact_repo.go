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

var _ domain.ContactRepository = (*Repository)(nil)

// dbContactSubmission represents a contact form submission as stored in the database.
type dbContactSubmission struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Message        string    `db:"message"`
	SubmissionType string    `db:"submission_type"`
	SubmittedAt    time.Time `db:"submitted_at"`
}

func toDomainContactSubmission(s *dbContactSubmission) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Message:        s.Message,
		SubmissionType: s.SubmissionType,
		SubmittedAt:    s.SubmittedAt,
	}
}

// InsertContactSubmission stores a new contact form submission.
func (repo *Repository) InsertContactSubmission(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submission (id, name, email, message, submission_type, submitted_at)
	          VALUES (:id, :name, :email, :message, :submission_type, :submitted_at)`

	_, err := repo.dbConn.NamedExecContext(ctx, query, &dbContactSubmission{
		ID:             submission.ID,
		Name:           submission.Name,
		Email:          submission.Email,
		Message:        submission.Message,
		SubmissionType: submission.SubmissionType,
		SubmittedAt:    submission.SubmittedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting contact submission %s: %w", submission.ID, err)
	}
	return nil
}

// GetContactSubmissions retrieves contact form submissions, newest first.
func (repo *Repository) GetContactSubmissions(ctx context.Context, limit int) ([]*domain.ContactSubmission, error) {
	var rows []*dbContactSubmission
	query := `SELECT id, name, email, message, submission_type, submitted_at
	          FROM contact_submission
	          ORDER BY submitted_at DESC, id DESC` + limitClause(limit)

	if err := repo.dbConn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("getting contact submissions: %w", err)
	}

	submissions := make([]*domain.ContactSubmission, len(rows))
	for i, row := range rows {
		submissions[i] = toDomainContactSubmission(row)
	}
	return submissions, nil
}

// GetContactSubmissionByID retrieves a single contact form submission.
func (repo *Repository) GetContactSubmissionByID(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error) {
	var row dbContactSubmission
	query := `SELECT id, name, email, message, submission_type, submitted_at
	          FROM contact_submission WHERE id = ?`

	err := repo.dbConn.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("getting contact submission %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting contact submission %s: %w", id, err)
	}
	return toDomainContactSubmission(&row), nil
}
