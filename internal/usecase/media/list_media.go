package media

import (
	"context"
	"fmt"

	"github.com/art2art/portfolio-media-go/internal/port"
)

// Pagination bounds for work media listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type mediaListerSrv struct {
	repo   port.MediaRepository
	gate   port.OwnershipGate
	signer port.AccessURLIssuer
}

// compile-time check: *mediaListerSrv must satisfy port.MediaLister
var _ port.MediaLister = (*mediaListerSrv)(nil)

func NewMediaLister(repo port.MediaRepository, gate port.OwnershipGate, signer port.AccessURLIssuer) port.MediaLister {
	return &mediaListerSrv{repo: repo, gate: gate, signer: signer}
}

// ListWorkMedia lists the acting artist's own work, so it goes through
// the ownership gate like every mutating operation.
func (s *mediaListerSrv) ListWorkMedia(ctx context.Context, in port.ListWorkMediaInput) (port.ListWorkMediaOutput, error) {
	if _, err := s.gate.ResolveOwnedWork(ctx, in.ArtistID, in.WorkID); err != nil {
		return port.ListWorkMediaOutput{}, err
	}
	return s.list(ctx, in)
}

// ListPublicWorkMedia serves anonymous reads of any artist's work; only
// existence of the artist/work pair is checked.
func (s *mediaListerSrv) ListPublicWorkMedia(ctx context.Context, in port.ListWorkMediaInput) (port.ListWorkMediaOutput, error) {
	if err := s.gate.RequireWork(ctx, in.ArtistID, in.WorkID); err != nil {
		return port.ListWorkMediaOutput{}, err
	}
	return s.list(ctx, in)
}

func (s *mediaListerSrv) list(ctx context.Context, in port.ListWorkMediaInput) (port.ListWorkMediaOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total, err := s.repo.CountByWork(ctx, in.WorkID)
	if err != nil {
		return port.ListWorkMediaOutput{}, err
	}

	medias, err := s.repo.ListByWork(ctx, in.WorkID, pageSize, (page-1)*pageSize)
	if err != nil {
		return port.ListWorkMediaOutput{}, err
	}

	items := make([]port.MediaOutput, 0, len(medias))
	for i := range medias {
		m := &medias[i]
		// fresh URL per item per response; nothing signed here is stored
		url, err := s.signer.SignedURL(ctx, m.ObjectKey)
		if err != nil {
			return port.ListWorkMediaOutput{}, fmt.Errorf("signing URL for media #%s: %w", m.ID, err)
		}
		items = append(items, port.MediaOutput{
			ID:        m.ID,
			URI:       url,
			MediaType: m.MediaType,
			SizeBytes: m.SizeBytes,
			Metadata:  m.Metadata,
		})
	}

	return port.ListWorkMediaOutput{TotalCount: total, Items: items}, nil
}
