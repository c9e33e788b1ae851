package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tfkr-ae/folio/domain"
)

var _ domain.QuickLinkRepository = (*Repository)(nil)

// dbQuickLink represents a quick link as stored in the database.
// "order" is reserved in SQL, so the column is sort_order.
type dbQuickLink struct {
	ID         uuid.UUID `db:"id"`
	Title      string    `db:"title"`
	URL        string    `db:"url"`
	IconClass  string    `db:"icon_class"`
	Color      string    `db:"color"`
	IsDownload bool      `db:"is_download"`
	Order      int       `db:"sort_order"`
}

func toDomainQuickLink(l *dbQuickLink) *domain.QuickLink {
	return &domain.QuickLink{
		ID:         l.ID,
		Title:      l.Title,
		URL:        l.URL,
		IconClass:  l.IconClass,
		Color:      l.Color,
		IsDownload: l.IsDownload,
		Order:      l.Order,
	}
}

// GetQuickLinks retrieves every quick link in ascending display order.
func (repo *Repository) GetQuickLinks(ctx context.Context) ([]*domain.QuickLink, error) {
	var rows []*dbQuickLink
	query := `SELECT id, title, url, icon_class, color, is_download, sort_order
	          FROM quick_link
	          ORDER BY sort_order ASC, title ASC`

	if err := repo.dbConn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("getting quick links: %w", err)
	}

	links := make([]*domain.QuickLink, len(rows))
	for i, row := range rows {
		links[i] = toDomainQuickLink(row)
	}
	return links, nil
}

// UpsertQuickLink creates a quick link or updates the one that already has the same title.
// An existing link keeps its ID.
func (repo *Repository) UpsertQuickLink(ctx context.Context, link *domain.QuickLink) error {
	if link.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		link.ID = id
	}
	if link.Color == "" {
		link.Color = domain.DefaultQuickLinkColor
	}

	query := `INSERT INTO quick_link (id, title, url, icon_class, color, is_download, sort_order)
	          VALUES (:id, :title, :url, :icon_class, :color, :is_download, :sort_order)
	          ON CONFLICT(title) DO UPDATE SET
	              url = excluded.url,
	              icon_class = excluded.icon_class,
	              color = excluded.color,
	              is_download = excluded.is_download,
	              sort_order = excluded.sort_order`

	_, err := repo.dbConn.NamedExecContext(ctx, query, &dbQuickLink{
		ID:         link.ID,
		Title:      link.Title,
		URL:        link.URL,
		IconClass:  link.IconClass,
		Color:      link.Color,
		IsDownload: link.IsDownload,
		Order:      link.Order,
	})
	if err != nil {
		return fmt.Errorf("upserting quick link %q: %w", link.Title, err)
	}
	return nil
}
