// Package notify composes notification mail for stored submissions and delivers it under an
// explicit failure policy.
//
// A Tolerant send never changes the outcome of the operation that triggered it. A Strict send
// that fails is reported back to the caller through Result.Fatal. Every attempt, delivered or
// not, is written to the notification log when a repository is configured.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
)

// Policy is the failure tolerance of a single send.
type Policy int

const (
	// Tolerant sends are best effort. Their failure is logged and recorded, then ignored.
	Tolerant Policy = iota
	// Strict sends abort the enclosing operation when delivery fails.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Tolerant:
		return "tolerant"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Message is a composed plain text mail.
type Message struct {
	Kind     string     // Template that produced the message.
	To       string     // Recipient address.
	Subject  string     // Subject line.
	Body     string     // Plain text body.
	RecordID *uuid.UUID // Submission the message is about, if any.
}

// Result is the outcome of one send.
type Result struct {
	Recipient string
	Policy    Policy
	Err       error
}

// Delivered reports whether the mail server accepted the message.
func (r Result) Delivered() bool {
	return r.Err == nil
}

// Fatal reports whether the send failed under the Strict policy.
func (r Result) Fatal() bool {
	return r.Policy == Strict && r.Err != nil
}

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher sends messages through a Mailer and keeps a record of every attempt.
type Dispatcher struct {
	mailer Mailer
	repo   domain.NotificationRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher around mailer and applies options.
func NewDispatcher(mailer Mailer, options ...func(*Dispatcher) error) (*Dispatcher, error) {
	if mailer == nil {
		return nil, fmt.Errorf("creating dispatcher: mailer is nil")
	}
	d := &Dispatcher{
		mailer: mailer,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, option := range options {
		if err := option(d); err != nil {
			return nil, fmt.Errorf("applying option on dispatcher : %w", err)
		}
	}
	return d, nil
}

// WithLogger sets the dispatcher logger. A nil logger keeps the discarding default.
func WithLogger(logger *slog.Logger) func(*Dispatcher) error {
	return func(d *Dispatcher) error {
		if logger != nil {
			d.logger = logger
		}
		return nil
	}
}

// WithRepo enables the notification log.
func WithRepo(repo domain.NotificationRepository) func(*Dispatcher) error {
	return func(d *Dispatcher) error {
		d.repo = repo
		return nil
	}
}

// Send delivers msg under policy. It never panics and never hides a failure: the returned
// Result carries the delivery error whatever the policy.
func (d *Dispatcher) Send(ctx context.Context, policy Policy, msg Message) Result {
	attemptedAt := d.now().UTC()
	err := d.mailer.Send(ctx, msg)
	result := Result{Recipient: msg.To, Policy: policy, Err: err}

	attrs := []any{
		slog.String("kind", msg.Kind),
		slog.String("recipient", msg.To),
		slog.String("policy", policy.String()),
	}
	switch {
	case err == nil:
		d.logger.Debug("notification delivered", attrs...)
	case policy == Strict:
		d.logger.Error("notification failed", append(attrs, slog.Any("error", err))...)
	default:
		d.logger.Warn("notification failed", append(attrs, slog.Any("error", err))...)
	}

	d.record(ctx, policy, msg, err, attemptedAt)
	return result
}

// record writes the attempt to the notification log. A logging failure never changes the Result.
func (d *Dispatcher) record(ctx context.Context, policy Policy, msg Message, sendErr error, attemptedAt time.Time) {
	if d.repo == nil {
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		d.logger.Warn("generating notification id", slog.Any("error", err))
		return
	}

	notification := &domain.Notification{
		ID:          id,
		Kind:        msg.Kind,
		Recipient:   msg.To,
		Policy:      policy.String(),
		Delivered:   sendErr == nil,
		RecordID:    msg.RecordID,
		Context:     map[string]any{"subject": msg.Subject},
		AttemptedAt: attemptedAt,
	}
	if sendErr != nil {
		notification.Error = sendErr.Error()
	}

	// Recorded even when the request context is already cancelled.
	if err := d.repo.InsertNotification(context.WithoutCancel(ctx), notification); err != nil {
		d.logger.Warn("recording notification", slog.String("kind", msg.Kind), slog.Any("error", err))
	}
}
