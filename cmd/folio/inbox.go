package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tfkr-ae/folio/domain"
)

// inboxRepository is the read side of the stores the inbox report draws from.
type inboxRepository interface {
	domain.ContactRepository
	domain.HireRequestRepository
	domain.NotificationRepository
}

type inboxEntry[T any] struct {
	Record        T                      `json:"record"`
	Notifications []*domain.Notification `json:"notifications"`
}

// inbox is the operator view of stored submissions, each with its delivery attempts.
// Undelivered lists every failed attempt, including tolerant ones the submitter never saw.
type inbox struct {
	Contacts     []inboxEntry[*domain.ContactSubmission] `json:"contacts"`
	HireRequests []inboxEntry[*domain.HireRequest]       `json:"hire_requests"`
	Undelivered  []*domain.Notification                  `json:"undelivered"`
}

func buildInbox(ctx context.Context, repo inboxRepository, limit int) (*inbox, error) {
	report := &inbox{
		Contacts:     []inboxEntry[*domain.ContactSubmission]{},
		HireRequests: []inboxEntry[*domain.HireRequest]{},
		Undelivered:  []*domain.Notification{},
	}

	contacts, err := repo.GetContactSubmissions(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, c := range contacts {
		sent, err := repo.GetNotificationsForRecord(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		report.Contacts = append(report.Contacts, inboxEntry[*domain.ContactSubmission]{Record: c, Notifications: sent})
	}

	requests, err := repo.GetHireRequests(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		sent, err := repo.GetNotificationsForRecord(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		report.HireRequests = append(report.HireRequests, inboxEntry[*domain.HireRequest]{Record: r, Notifications: sent})
	}

	attempts, err := repo.GetNotifications(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range attempts {
		if !n.Delivered {
			report.Undelivered = append(report.Undelivered, n)
		}
	}
	return report, nil
}

// writeInbox prints the inbox report as indented JSON.
func writeInbox(ctx context.Context, repo inboxRepository, limit int, w io.Writer) error {
	report, err := buildInbox(ctx, repo, limit)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("writing inbox: %w", err)
	}
	return nil
}
