package folio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
	"github.com/tfkr-ae/folio/notify"
	"github.com/tfkr-ae/folio/validation"
)

// newRecordIdentity returns a fresh record ID and the creation time in UTC.
func (s *Service) newRecordIdentity() (uuid.UUID, time.Time, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("generating record id: %w", err)
	}
	return id, s.now().UTC(), nil
}

// CreateProject validates and stores a project. Invalid input returns *validation.FieldErrors
// and nothing is stored.
func (s *Service) CreateProject(ctx context.Context, in validation.ProjectInput) (*domain.Project, error) {
	res := validation.ValidateProject(in)
	if err := res.Err(); err != nil {
		return nil, err
	}

	project := res.Value
	id, now, err := s.newRecordIdentity()
	if err != nil {
		return nil, err
	}
	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.Repo.InsertProject(ctx, project); err != nil {
		return nil, fmt.Errorf("storing project: %w", err)
	}

	loggerFromContext(ctx, s.Logger).Info("project created", slog.String("id", project.ID.String()))
	return project, nil
}

// SubmitContact validates and stores a contact submission, then alerts the owner.
// The alert is tolerant: its failure never changes the result.
func (s *Service) SubmitContact(ctx context.Context, in validation.ContactInput) (*domain.ContactSubmission, error) {
	logger := loggerFromContext(ctx, s.Logger)

	res := validation.ValidateContact(in)
	if err := res.Err(); err != nil {
		return nil, err
	}

	submission := res.Value
	id, now, err := s.newRecordIdentity()
	if err != nil {
		return nil, err
	}
	submission.ID = id
	submission.SubmittedAt = now

	if err := s.Repo.InsertContactSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("storing contact submission: %w", err)
	}
	logger.Info("contact submission stored", slog.String("id", submission.ID.String()))

	msg, err := notify.ContactOwner(s.Config.Mail.ContactEmail, submission)
	if err != nil {
		logger.Warn("composing contact alert", slog.Any("error", err))
		return submission, nil
	}
	s.Notifier.Send(ctx, notify.Tolerant, msg)

	return submission, nil
}

// SubmitHireRequest validates and stores a hire request, then alerts the owner and confirms
// with the applicant.
//
// The owner alert is strict. When it fails the stored request is returned together with a
// *NotificationError and the applicant is not contacted. The request stays stored.
// The applicant confirmation is tolerant and only sent once the owner alert was delivered.
func (s *Service) SubmitHireRequest(ctx context.Context, in validation.HireInput) (*domain.HireRequest, error) {
	logger := loggerFromContext(ctx, s.Logger)

	res := validation.ValidateHire(in)
	if err := res.Err(); err != nil {
		return nil, err
	}

	request := res.Value
	id, now, err := s.newRecordIdentity()
	if err != nil {
		return nil, err
	}
	request.ID = id
	request.SubmittedAt = now

	if err := s.Repo.InsertHireRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("storing hire request: %w", err)
	}
	logger.Info("hire request stored", slog.String("id", request.ID.String()))

	owner := s.Config.Mail.ContactEmail
	msg, err := notify.HireOwner(owner, request, s.Config.Profile)
	if err != nil {
		return request, &NotificationError{Recipient: owner, Err: err}
	}
	if result := s.Notifier.Send(ctx, notify.Strict, msg); result.Fatal() {
		return request, &NotificationError{Recipient: result.Recipient, Err: result.Err}
	}

	confirmation, err := notify.HireApplicant(request, s.Config.Profile)
	if err != nil {
		logger.Warn("composing applicant confirmation", slog.Any("error", err))
		return request, nil
	}
	s.Notifier.Send(ctx, notify.Tolerant, confirmation)

	return request, nil
}
