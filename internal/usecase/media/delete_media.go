package media

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/art2art/portfolio-media-go/internal/port"
)

type mediaDeleterSrv struct {
	repo port.MediaRepository
	strg port.Storage
	gate port.OwnershipGate
}

// compile-time check: *mediaDeleterSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*mediaDeleterSrv)(nil)

// NewMediaDeleter constructs a port.MediaDeleter implementation.
func NewMediaDeleter(repo port.MediaRepository, strg port.Storage, gate port.OwnershipGate) port.MediaDeleter {
	return &mediaDeleterSrv{repo: repo, strg: strg, gate: gate}
}

// DeleteMedia removes the blob first, then the catalog row. If the blob
// delete fails the row survives, so it never points at nothing and the
// caller can simply retry.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) error {
	if _, err := s.gate.ResolveOwnedWork(ctx, in.ArtistID, in.WorkID); err != nil {
		return err
	}

	media, err := s.repo.GetByIDAndWork(ctx, in.MediaID, in.WorkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.strg.RemoveFile(ctx, media.ObjectKey); err != nil {
		if !errors.Is(err, ErrObjectNotFound) {
			return err
		}
		// blob already gone; still drop the row so a retry converges
		log.Printf("blob %q already absent, removing catalog row anyway", media.ObjectKey)
	}

	if err := s.repo.Delete(ctx, media.ID); err != nil {
		return err
	}

	return nil
}
