package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/art2art/portfolio-media-go/internal/port"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s under work #%s...", media.ID, media.WorkID)

	const query = `
      INSERT INTO medias
        (id, work_id, object_key, media_type, size_bytes, metadata)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.WorkID, media.ObjectKey,
		media.MediaType, media.SizeBytes, media.Metadata,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) ListByWork(ctx context.Context, workID db.UUID, limit, offset int) ([]model.Media, error) {
	log.Printf("listing medias of work #%s from the database...", workID)

	const query = `
      SELECT id, work_id, object_key, media_type, size_bytes, metadata, created_at
      FROM medias
      WHERE work_id = ?
      ORDER BY created_at, id
      LIMIT ? OFFSET ?
    `
	rows, err := r.db.QueryContext(ctx, query, workID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var medias []model.Media
	for rows.Next() {
		var m model.Media
		if err := rows.Scan(
			&m.ID, &m.WorkID, &m.ObjectKey,
			&m.MediaType, &m.SizeBytes, &m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		medias = append(medias, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return medias, nil
}

func (r *MediaRepository) GetByIDAndWork(ctx context.Context, id, workID db.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s of work #%s from the database...", id, workID)

	const query = `
      SELECT id, work_id, object_key, media_type, size_bytes, metadata, created_at
      FROM medias
      WHERE id = ? AND work_id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id, workID)
	var m model.Media
	if err := row.Scan(
		&m.ID, &m.WorkID, &m.ObjectKey,
		&m.MediaType, &m.SizeBytes, &m.Metadata,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *MediaRepository) ExistsByIDAndWork(ctx context.Context, id, workID db.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM medias WHERE id = ? AND work_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id, workID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *MediaRepository) CountByWork(ctx context.Context, workID db.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM medias WHERE work_id = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, workID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for media #%s...", id)

	const query = `DELETE FROM medias WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
