package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSubmissionType is used when a contact form does not say what kind of message it carries.
const DefaultSubmissionType = "general"

// ContactRepository defines the persistence contract for contact form submissions.
type ContactRepository interface {
	// InsertContactSubmission stores a new submission.
	InsertContactSubmission(ctx context.Context, submission *ContactSubmission) error

	// GetContactSubmissions returns submissions ordered newest first.
	// A limit of zero or less returns every submission.
	GetContactSubmissions(ctx context.Context, limit int) ([]*ContactSubmission, error)

	// GetContactSubmissionByID returns a single submission, or an error wrapping ErrNotFound.
	GetContactSubmissionByID(ctx context.Context, id uuid.UUID) (*ContactSubmission, error)
}

// ContactSubmission is a message sent through the public contact form. It is immutable once stored.
type ContactSubmission struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Message        string    `json:"message"`
	SubmissionType string    `json:"submission_type"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
