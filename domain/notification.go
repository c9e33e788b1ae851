package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a record with the requested ID does not exist.
var ErrNotFound = errors.New("record not found")

// NotificationRepository defines the interface for recording notification delivery attempts.
// Every attempt is written, including tolerant failures that never reach the caller.
type NotificationRepository interface {
	// InsertNotification saves a delivery attempt.
	InsertNotification(ctx context.Context, notification *Notification) error
	// GetNotifications retrieves every delivery attempt, newest first.
	GetNotifications(ctx context.Context) ([]*Notification, error)
	// GetNotificationsForRecord retrieves the delivery attempts made for one submission, oldest first.
	GetNotificationsForRecord(ctx context.Context, recordID uuid.UUID) ([]*Notification, error)
}

// Notification is a single delivery attempt of a notification message.
type Notification struct {
	ID          uuid.UUID      `json:"id"`           // Unique identifier for the attempt.
	Kind        string         `json:"kind"`         // Template that produced the message (e.g. contact_owner, hire_owner).
	Recipient   string         `json:"recipient"`    // Destination address.
	Policy      string         `json:"policy"`       // Failure tolerance the send ran under (tolerant or strict).
	Delivered   bool           `json:"delivered"`    // Whether the mail server accepted the message.
	Error       string         `json:"error"`        // Delivery error text when Delivered is false.
	RecordID    *uuid.UUID     `json:"record_id"`    // The submission the message was about, if any.
	Context     map[string]any `json:"context"`      // Additional key-value data for diagnostics.
	AttemptedAt time.Time      `json:"attempted_at"` // When the send was attempted.
}
