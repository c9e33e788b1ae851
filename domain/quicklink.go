package domain

import (
	"context"

	"github.com/google/uuid"
)

// DefaultQuickLinkColor is the color given to a quick link that does not set one.
const DefaultQuickLinkColor = "#3498db"

// QuickLinkRepository defines the persistence contract for quick links.
// Quick links are read-only over HTTP and managed out-of-band through UpsertQuickLink.
type QuickLinkRepository interface {
	// GetQuickLinks returns every quick link in ascending display order.
	GetQuickLinks(ctx context.Context) ([]*QuickLink, error)

	// UpsertQuickLink creates a quick link, or updates the existing one with the same title.
	UpsertQuickLink(ctx context.Context, link *QuickLink) error
}

// QuickLink is a titled shortcut shown on the portfolio landing page.
type QuickLink struct {
	ID         uuid.UUID `json:"id" yaml:"-"`
	Title      string    `json:"title" yaml:"title"`
	URL        string    `json:"url" yaml:"url"`
	IconClass  string    `json:"icon_class" yaml:"icon_class"` // e.g. a font-awesome class
	Color      string    `json:"color" yaml:"color"`
	IsDownload bool      `json:"is_download" yaml:"is_download"` // The target is a downloadable asset.
	Order      int       `json:"order" yaml:"order"`             // Ascending display order.
}
