package folio

import (
	"errors"
	"fmt"
)

// ErrMissingUsername is returned by a repository sync that was given no GitHub username.
var ErrMissingUsername = errors.New("GitHub username is required")

// UpstreamError is a failed call to the GitHub API. StatusCode is the upstream status,
// or 502 when no response was received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NotificationError is a strict notification that could not be delivered.
// The record that triggered it has already been stored.
type NotificationError struct {
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notifying %s: %v", e.Recipient, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// ConfigurationError is a missing or invalid setting found at startup.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}
