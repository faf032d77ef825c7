package media

import (
	"context"
	"errors"
	"testing"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/art2art/portfolio-media-go/internal/port"
)

func newDeleter(workRepo *mockWorkRepo, repo *mockMediaRepo, strg *mockStorage) port.MediaDeleter {
	return NewMediaDeleter(repo, strg, NewOwnershipGate(workRepo))
}

func TestDeleteMedia_WorkNotOwned(t *testing.T) {
	svc := newDeleter(&mockWorkRepo{}, &mockMediaRepo{}, newMockStorage())

	err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: db.NewUUID(), WorkID: db.NewUUID(), MediaID: db.NewUUID(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMedia_MediaNotFoundUnderWork(t *testing.T) {
	workRepo, artistID, workID := ownedWork()
	// a media id belonging to another work behaves like a missing id
	repo := &mockMediaRepo{getOut: nil}
	svc := newDeleter(workRepo, repo, newMockStorage())

	err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: artistID, WorkID: workID, MediaID: db.NewUUID(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMedia_BlobDeleteFailureKeepsRow(t *testing.T) {
	workRepo, artistID, workID := ownedWork()
	m := &model.Media{ID: db.NewUUID(), WorkID: workID, ObjectKey: "artist-x/work-y/1_aaaa.png"}
	repo := &mockMediaRepo{getOut: m}
	strg := newMockStorage()
	strg.removeErr = ErrInternal
	svc := newDeleter(workRepo, repo, strg)

	err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: artistID, WorkID: workID, MediaID: m.ID,
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("row must survive when the blob delete fails")
	}
}

func TestDeleteMedia_BlobAlreadyGone(t *testing.T) {
	workRepo, artistID, workID := ownedWork()
	m := &model.Media{ID: db.NewUUID(), WorkID: workID, ObjectKey: "artist-x/work-y/1_aaaa.png"}
	repo := &mockMediaRepo{getOut: m}
	strg := newMockStorage()
	strg.removeErr = ErrObjectNotFound
	svc := newDeleter(workRepo, repo, strg)

	// re-delete after a previous partial failure still converges
	err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: artistID, WorkID: workID, MediaID: m.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != m.ID {
		t.Error("row should be removed even when the blob was already absent")
	}
}

func TestDeleteMedia_RowDeleteError(t *testing.T) {
	workRepo, artistID, workID := ownedWork()
	m := &model.Media{ID: db.NewUUID(), WorkID: workID, ObjectKey: "artist-x/work-y/1_aaaa.png"}
	repo := &mockMediaRepo{getOut: m, deleteErr: errors.New("delete fail")}
	svc := newDeleter(workRepo, repo, newMockStorage())

	err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: artistID, WorkID: workID, MediaID: m.ID,
	})
	if err == nil || err.Error() != "delete fail" {
		t.Fatalf("expected delete fail, got %v", err)
	}
}

func TestDeleteMedia_Success(t *testing.T) {
	workRepo, artistID, workID := ownedWork()
	m := &model.Media{ID: db.NewUUID(), WorkID: workID, ObjectKey: "artist-x/work-y/1_aaaa.png"}
	repo := &mockMediaRepo{getOut: m}
	strg := newMockStorage()
	svc := newDeleter(workRepo, repo, strg)

	if err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{
		ArtistID: artistID, WorkID: workID, MediaID: m.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(strg.removedKeys) != 1 || strg.removedKeys[0] != m.ObjectKey {
		t.Errorf("removed keys = %v; want [%q]", strg.removedKeys, m.ObjectKey)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != m.ID {
		t.Errorf("deleted rows = %v; want [%s]", repo.deleted, m.ID)
	}
}
