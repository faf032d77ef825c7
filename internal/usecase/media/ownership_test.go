package media

import (
	"context"
	"errors"
	"testing"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
)

func TestOwnershipGate_ResolveOwnedWork(t *testing.T) {
	artistID, workID := db.NewUUID(), db.NewUUID()
	repo := &mockWorkRepo{work: &model.Work{ID: workID, ArtistID: artistID}}
	gate := NewOwnershipGate(repo)

	work, err := gate.ResolveOwnedWork(context.Background(), artistID, workID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if work.ID != workID {
		t.Errorf("work id = %s; want %s", work.ID, workID)
	}
	if repo.lastWorkID != workID || repo.lastArtistID != artistID {
		t.Error("lookup must be scoped by both work and artist id")
	}
}

func TestOwnershipGate_NotOwnedLooksLikeMissing(t *testing.T) {
	gate := NewOwnershipGate(&mockWorkRepo{})

	_, err := gate.ResolveOwnedWork(context.Background(), db.NewUUID(), db.NewUUID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOwnershipGate_RepoErrorPassthrough(t *testing.T) {
	boom := errors.New("db down")
	gate := NewOwnershipGate(&mockWorkRepo{getErr: boom})

	_, err := gate.ResolveOwnedWork(context.Background(), db.NewUUID(), db.NewUUID())
	if !errors.Is(err, boom) {
		t.Fatalf("expected db down, got %v", err)
	}
}

func TestOwnershipGate_RequireWork(t *testing.T) {
	gate := NewOwnershipGate(&mockWorkRepo{exists: true})
	if err := gate.RequireWork(context.Background(), db.NewUUID(), db.NewUUID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gate = NewOwnershipGate(&mockWorkRepo{exists: false})
	if err := gate.RequireWork(context.Background(), db.NewUUID(), db.NewUUID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
