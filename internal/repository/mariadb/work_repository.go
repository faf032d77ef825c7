package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/art2art/portfolio-media-go/internal/port"
)

type WorkRepository struct {
	db *sql.DB
}

// compile-time check: *WorkRepository must satisfy port.WorkRepository
var _ port.WorkRepository = (*WorkRepository)(nil)

func NewWorkRepository(db *sql.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

func (r *WorkRepository) GetByIDAndArtist(ctx context.Context, id, artistID db.UUID) (*model.Work, error) {
	log.Printf("fetching work #%s of artist #%s from the database...", id, artistID)

	const query = `
      SELECT id, artist_id, title, created_at
      FROM works
      WHERE id = ? AND artist_id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id, artistID)
	var w model.Work
	if err := row.Scan(&w.ID, &w.ArtistID, &w.Title, &w.CreatedAt); err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *WorkRepository) ExistsByIDAndArtist(ctx context.Context, id, artistID db.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM works WHERE id = ? AND artist_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id, artistID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
