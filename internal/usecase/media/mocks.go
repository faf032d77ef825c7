package media

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
)

// Hand-rolled collaborators shared by the tests in this package.

type mockWorkRepo struct {
	work      *model.Work
	getErr    error
	exists    bool
	existsErr error

	lastWorkID   db.UUID
	lastArtistID db.UUID
}

func (m *mockWorkRepo) GetByIDAndArtist(ctx context.Context, id, artistID db.UUID) (*model.Work, error) {
	m.lastWorkID, m.lastArtistID = id, artistID
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.work == nil {
		return nil, sql.ErrNoRows
	}
	return m.work, nil
}

func (m *mockWorkRepo) ExistsByIDAndArtist(ctx context.Context, id, artistID db.UUID) (bool, error) {
	m.lastWorkID, m.lastArtistID = id, artistID
	return m.exists, m.existsErr
}

type mockMediaRepo struct {
	count     int
	countErr  error
	listOut   []model.Media
	listErr   error
	getOut    *model.Media
	getErr    error
	existsOut bool
	createErr error
	deleteErr error

	created     []*model.Media
	deleted     []db.UUID
	countCalled bool
	lastLimit   int
	lastOffset  int
}

func (m *mockMediaRepo) Create(ctx context.Context, media *model.Media) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *media
	m.created = append(m.created, &cp)
	return nil
}

func (m *mockMediaRepo) ListByWork(ctx context.Context, workID db.UUID, limit, offset int) ([]model.Media, error) {
	m.lastLimit, m.lastOffset = limit, offset
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listOut, nil
}

func (m *mockMediaRepo) GetByIDAndWork(ctx context.Context, id, workID db.UUID) (*model.Media, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.getOut == nil {
		return nil, sql.ErrNoRows
	}
	return m.getOut, nil
}

func (m *mockMediaRepo) ExistsByIDAndWork(ctx context.Context, id, workID db.UUID) (bool, error) {
	return m.existsOut, nil
}

func (m *mockMediaRepo) CountByWork(ctx context.Context, workID db.UUID) (int, error) {
	m.countCalled = true
	return m.count, m.countErr
}

func (m *mockMediaRepo) Delete(ctx context.Context, id db.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockStorage struct {
	saveFailAt int // index of the save that errors, -1 for never
	saveErr    error
	removeErr  error
	presignErr error
	initErr    error

	savedKeys   []string
	savedSizes  []int64
	savedTypes  []string
	removedKeys []string
	presigned   int
}

func newMockStorage() *mockStorage {
	return &mockStorage{saveFailAt: -1}
}

func (m *mockStorage) InitBucket(ctx context.Context) error {
	return m.initErr
}

func (m *mockStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, contentType string) error {
	if m.saveFailAt >= 0 && len(m.savedKeys) == m.saveFailAt {
		if m.saveErr != nil {
			return m.saveErr
		}
		return ErrInternal
	}
	m.savedKeys = append(m.savedKeys, fileKey)
	m.savedSizes = append(m.savedSizes, fileSize)
	m.savedTypes = append(m.savedTypes, contentType)
	return nil
}

func (m *mockStorage) RemoveFile(ctx context.Context, fileKey string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removedKeys = append(m.removedKeys, fileKey)
	return nil
}

func (m *mockStorage) GeneratePresignedDownloadURL(ctx context.Context, fileKey string, expiry time.Duration) (string, error) {
	if m.presignErr != nil {
		return "", m.presignErr
	}
	m.presigned++
	// unique token per call, like a real signer
	return fmt.Sprintf("https://cdn.example.com/%s?token=%d&ttl=%d", fileKey, m.presigned, int(expiry.Seconds())), nil
}
