package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/google/uuid"
)

var artistID = db.UUID(uuid.MustParse("deadbeef-0000-1111-2222-333333333333"))

func TestWorkRepository_GetByIDAndArtist_Success(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewWorkRepository(sqlDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "artist_id", "title", "created_at"}).
		AddRow(workID, artistID, "Blue Period", now)

	mock.ExpectQuery(regexp.QuoteMeta(`
      SELECT id, artist_id, title, created_at
      FROM works
      WHERE id = ? AND artist_id = ?
    `)).
		WithArgs(workID, artistID).
		WillReturnRows(rows)

	got, err := repo.GetByIDAndArtist(context.Background(), workID, artistID)
	if err != nil {
		t.Fatalf("GetByIDAndArtist() returned unexpected error: %v", err)
	}
	if got.ID != workID || got.ArtistID != artistID || got.Title != "Blue Period" {
		t.Errorf("unexpected work: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestWorkRepository_GetByIDAndArtist_NoRows(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewWorkRepository(sqlDB)

	mock.ExpectQuery("SELECT id, artist_id").
		WithArgs(workID, artistID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDAndArtist(context.Background(), workID, artistID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestWorkRepository_ExistsByIDAndArtist(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"work belongs to artist", true},
		{"work absent or foreign", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock := newMock(t)
			repo := NewWorkRepository(sqlDB)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM works WHERE id = ? AND artist_id = ?)`)).
				WithArgs(workID, artistID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.exists))

			exists, err := repo.ExistsByIDAndArtist(context.Background(), workID, artistID)
			if err != nil {
				t.Fatalf("ExistsByIDAndArtist() returned unexpected error: %v", err)
			}
			if exists != tc.exists {
				t.Errorf("exists = %v; want %v", exists, tc.exists)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestWorkRepository_ExistsByIDAndArtist_QueryError(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewWorkRepository(sqlDB)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(workID, artistID).
		WillReturnError(errors.New("db.Query failed"))

	if _, err := repo.ExistsByIDAndArtist(context.Background(), workID, artistID); err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
