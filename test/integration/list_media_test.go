package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/port"
	mediaSvc "github.com/art2art/portfolio-media-go/internal/usecase/media"
	"github.com/art2art/portfolio-media-go/test/testutil"
	"github.com/google/uuid"
)

func TestListMediaIntegration_PaginationAndFreshURLs(t *testing.T) {
	ctx := context.Background()

	stack, cleanup := setupMediaStack(t, "list-itest")
	defer cleanup()

	artistID := db.UUID(uuid.New())
	work := testutil.InsertWork(t, stack.db, artistID, "Gallery Wall")

	if _, err := stack.uploader.UploadMedia(ctx, uploadInput(artistID, work.ID,
		pngUpload(t, "one.png", 4, 4),
		pngUpload(t, "two.png", 4, 4),
		pngUpload(t, "three.png", 4, 4),
	)); err != nil {
		t.Fatalf("seed upload: %v", err)
	}

	out, err := stack.lister.ListWorkMedia(ctx, port.ListWorkMediaInput{
		ArtistID: artistID,
		WorkID:   work.ID,
		Page:     1,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("ListWorkMedia returned error: %v", err)
	}
	if out.TotalCount != 3 {
		t.Errorf("TotalCount = %d; want 3", out.TotalCount)
	}
	if len(out.Items) != 2 {
		t.Fatalf("page 1 items = %d; want 2", len(out.Items))
	}

	page2, err := stack.lister.ListWorkMedia(ctx, port.ListWorkMediaInput{
		ArtistID: artistID,
		WorkID:   work.ID,
		Page:     2,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("page 2 returned error: %v", err)
	}
	if len(page2.Items) != 1 {
		t.Fatalf("page 2 items = %d; want 1", len(page2.Items))
	}

	// URLs are minted per response, never reused
	again, err := stack.lister.ListWorkMedia(ctx, port.ListWorkMediaInput{
		ArtistID: artistID,
		WorkID:   work.ID,
		Page:     1,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("repeat list returned error: %v", err)
	}
	if out.Items[0].URI == again.Items[0].URI {
		t.Error("two responses shared a signed URL")
	}
}

func TestListMediaIntegration_PublicVsOwned(t *testing.T) {
	ctx := context.Background()

	stack, cleanup := setupMediaStack(t, "public-itest")
	defer cleanup()

	owner := db.UUID(uuid.New())
	visitor := db.UUID(uuid.New())
	work := testutil.InsertWork(t, stack.db, owner, "Open Studio")

	if _, err := stack.uploader.UploadMedia(ctx, uploadInput(owner, work.ID,
		pngUpload(t, "public.png", 4, 4),
	)); err != nil {
		t.Fatalf("seed upload: %v", err)
	}

	// the owner-gated variant rejects anyone but the owner
	if _, err := stack.lister.ListWorkMedia(ctx, port.ListWorkMediaInput{
		ArtistID: visitor,
		WorkID:   work.ID,
	}); !errors.Is(err, mediaSvc.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	// the public variant only needs the artist/work pair to exist
	out, err := stack.lister.ListPublicWorkMedia(ctx, port.ListWorkMediaInput{
		ArtistID: owner,
		WorkID:   work.ID,
	})
	if err != nil {
		t.Fatalf("ListPublicWorkMedia returned error: %v", err)
	}
	if out.TotalCount != 1 || len(out.Items) != 1 {
		t.Errorf("unexpected public listing: total=%d items=%d", out.TotalCount, len(out.Items))
	}
}
