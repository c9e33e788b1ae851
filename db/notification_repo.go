package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
)

var _ domain.NotificationRepository = (*Repository)(nil)

// dbNotification represents a notification delivery attempt as stored in the database.
type dbNotification struct {
	ID          uuid.UUID      `db:"id"`
	Kind        string         `db:"kind"`
	Recipient   string         `db:"recipient"`
	Policy      string         `db:"policy"`
	Delivered   bool           `db:"delivered"`
	Error       string         `db:"error"`
	RecordID    sql.NullString `db:"record_id"` // The submission the message was about.
	Context     Metadata       `db:"context"`
	AttemptedAt time.Time      `db:"attempted_at"`
}

// toDomainNotification converts a dbNotification to a domain.Notification.
func toDomainNotification(dbNotification *dbNotification) *domain.Notification {
	notification := &domain.Notification{
		ID:          dbNotification.ID,
		Kind:        dbNotification.Kind,
		Recipient:   dbNotification.Recipient,
		Policy:      dbNotification.Policy,
		Delivered:   dbNotification.Delivered,
		Error:       dbNotification.Error,
		Context:     map[string]any(dbNotification.Context),
		AttemptedAt: dbNotification.AttemptedAt,
	}

	if dbNotification.RecordID.Valid {
		if id, err := uuid.Parse(dbNotification.RecordID.String); err == nil {
			notification.RecordID = &id
		}
	}

	return notification
}

// fromDomainNotification converts a domain.Notification to a dbNotification.
func fromDomainNotification(notification *domain.Notification) *dbNotification {
	dbNotification := &dbNotification{
		ID:          notification.ID,
		Kind:        notification.Kind,
		Recipient:   notification.Recipient,
		Policy:      notification.Policy,
		Delivered:   notification.Delivered,
		Error:       notification.Error,
		Context:     Metadata(notification.Context),
		AttemptedAt: notification.AttemptedAt,
	}

	if notification.RecordID != nil {
		dbNotification.RecordID = sql.NullString{String: notification.RecordID.String(), Valid: true}
	}

	return dbNotification
}

// InsertNotification saves a delivery attempt to the database.
func (repo *Repository) InsertNotification(ctx context.Context, notification *domain.Notification) error {
	query := `INSERT INTO notification (id, kind, recipient, policy, delivered, error, record_id, context, attempted_at)
	          VALUES (:id, :kind, :recipient, :policy, :delivered, :error, :record_id, :context, :attempted_at)`

	_, err := repo.dbConn.NamedExecContext(ctx, query, fromDomainNotification(notification))
	if err != nil {
		return fmt.Errorf("inserting notification %s: %w", notification.ID, err)
	}

	return nil
}

// GetNotifications retrieves every delivery attempt, newest first.
func (repo *Repository) GetNotifications(ctx context.Context) ([]*domain.Notification, error) {
	var dbNotifications []*dbNotification
	query := `SELECT id, kind, recipient, policy, delivered, error, record_id, context, attempted_at
	          FROM notification
	          ORDER BY attempted_at DESC, id DESC`

	err := repo.dbConn.SelectContext(ctx, &dbNotifications, query)
	if err != nil {
		return nil, fmt.Errorf("fetching all notifications: %w", err)
	}

	notifications := make([]*domain.Notification, len(dbNotifications))
	for i, dbNotification := range dbNotifications {
		notifications[i] = toDomainNotification(dbNotification)
	}

	return notifications, nil
}

// GetNotificationsForRecord retrieves the delivery attempts for one submission in the order they were made.
func (repo *Repository) GetNotificationsForRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.Notification, error) {
	var dbNotifications []*dbNotification
	query := `SELECT id, kind, recipient, policy, delivered, error, record_id, context, attempted_at
	          FROM notification
	          WHERE record_id = ?
	          ORDER BY attempted_at ASC, id ASC`

	err := repo.dbConn.SelectContext(ctx, &dbNotifications, query, recordID.String())
	if err != nil {
		return nil, fmt.Errorf("fetching notifications for %s: %w", recordID, err)
	}

	notifications := make([]*domain.Notification, len(dbNotifications))
	for i, dbNotification := range dbNotifications {
		notifications[i] = toDomainNotification(dbNotification)
	}

	return notifications, nil
}
