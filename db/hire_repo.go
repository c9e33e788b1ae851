package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tfkr-ae/folio/domain"
)

var _ domain.HireRequestRepository = (*Repository)(nil)

// dbHireRequest represents a hire request as stored in the database.
// The salary is kept as TEXT so SQLite never rounds it through a REAL.
type dbHireRequest struct {
	ID             uuid.UUID       `db:"id"`
	ApplicantName  string          `db:"applicant_name"`
	ApplicantEmail string          `db:"applicant_email"`
	ApplicantPhone string          `db:"applicant_phone"`
	CompanyName    string          `db:"company_name"`
	Role           string          `db:"role"`
	OfferedSalary  decimal.Decimal `db:"offered_salary"`
	Message        sql.NullString  `db:"message"`
	SubmittedAt    time.Time       `db:"submitted_at"`
}

func toDomainHireRequest(r *dbHireRequest) *domain.HireRequest {
	return &domain.HireRequest{
		ID:             r.ID,
		ApplicantName:  r.ApplicantName,
		ApplicantEmail: r.ApplicantEmail,
		ApplicantPhone: r.ApplicantPhone,
		CompanyName:    r.CompanyName,
		Role:           r.Role,
		OfferedSalary:  r.OfferedSalary,
		Message:        fromNullString(r.Message),
		SubmittedAt:    r.SubmittedAt,
	}
}

func fromDomainHireRequest(r *domain.HireRequest) *dbHireRequest {
	return &dbHireRequest{
		ID:             r.ID,
		ApplicantName:  r.ApplicantName,
		ApplicantEmail: r.ApplicantEmail,
		ApplicantPhone: r.ApplicantPhone,
		CompanyName:    r.CompanyName,
		Role:           r.Role,
		OfferedSalary:  r.OfferedSalary,
		Message:        toNullString(r.Message),
		SubmittedAt:    r.SubmittedAt,
	}
}

// InsertHireRequest stores a new hire request.
func (repo *Repository) InsertHireRequest(ctx context.Context, request *domain.HireRequest) error {
	query := `INSERT INTO hire_request (id, applicant_name, applicant_email, applicant_phone, company_name, role, offered_salary, message, submitted_at)
	          VALUES (:id, :applicant_name, :applicant_email, :applicant_phone, :company_name, :role, :offered_salary, :message, :submitted_at)`

	_, err := repo.dbConn.NamedExecContext(ctx, query, fromDomainHireRequest(request))
	if err != nil {
		return fmt.Errorf("inserting hire request %s: %w", request.ID, err)
	}
	return nil
}

// GetHireRequests retrieves hire requests, newest first.
func (repo *Repository) GetHireRequests(ctx context.Context, limit int) ([]*domain.HireRequest, error) {
	var rows []*dbHireRequest
	query := `SELECT id, applicant_name, applicant_email, applicant_phone, company_name, role, offered_salary, message, submitted_at
	          FROM hire_request
	          ORDER BY submitted_at DESC, id DESC` + limitClause(limit)

	if err := repo.dbConn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("getting hire requests: %w", err)
	}

	requests := make([]*domain.HireRequest, len(rows))
	for i, row := range rows {
		requests[i] = toDomainHireRequest(row)
	}
	return requests, nil
}

// GetHireRequestByID retrieves a single hire request.
func (repo *Repository) GetHireRequestByID(ctx context.Context, id uuid.UUID) (*domain.HireRequest, error) {
	var row dbHireRequest
	query := `SELECT id, applicant_name, applicant_email, applicant_phone, company_name, role, offered_salary, message, submitted_at
	          FROM hire_request WHERE id = ?`

	err := repo.dbConn.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("getting hire request %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting hire request %s: %w", id, err)
	}
	return toDomainHireRequest(&row), nil
}
