// Package archive keeps a Postgres copy of notification lists that the
// cleanup sweep would otherwise delete outright.
package archive

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/model"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ArchiveList copies a user's notifications into notifications_archive.
func (r *Repository) ArchiveList(ctx context.Context, userID string, notifications []model.Notification) error {
	query := `
        INSERT INTO notifications_archive (notification_id, user_id, type, title, message, route, read, created_at, archived_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
        ON CONFLICT (notification_id) DO NOTHING
    `
	for _, n := range notifications {
		_, err := r.db.Exec(ctx, query,
			n.ID, userID, n.Type, n.Title, n.Message, n.Route, n.Read, n.Timestamp)
		if err != nil {
			return fmt.Errorf("archive notification %s: %w", n.ID, err)
		}
	}
	return nil
}
