package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HireRequestRepository defines the persistence contract for hire requests.
type HireRequestRepository interface {
	// InsertHireRequest stores a new hire request.
	InsertHireRequest(ctx context.Context, request *HireRequest) error

	// GetHireRequests returns hire requests ordered newest first.
	// A limit of zero or less returns every request.
	GetHireRequests(ctx context.Context, limit int) ([]*HireRequest, error)

	// GetHireRequestByID returns a single hire request, or an error wrapping ErrNotFound.
	GetHireRequestByID(ctx context.Context, id uuid.UUID) (*HireRequest, error)
}

// HireRequest is an offer of work submitted through the hire form. It is immutable once stored.
type HireRequest struct {
	ID             uuid.UUID       `json:"id"`
	ApplicantName  string          `json:"applicant_name"`
	ApplicantEmail string          `json:"applicant_email"`
	ApplicantPhone string          `json:"applicant_phone"` // Optional leading '+' then 7 to 15 digits.
	CompanyName    string          `json:"company_name"`
	Role           string          `json:"role"`
	OfferedSalary  decimal.Decimal `json:"offered_salary"` // Non-negative, two decimal places.
	Message        *string         `json:"message"`
	SubmittedAt    time.Time       `json:"submitted_at"`
}
