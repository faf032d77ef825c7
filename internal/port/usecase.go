package port

import (
	"context"
	"io"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
)

// UUIDGen produces identifiers for newly created rows.
type UUIDGen func() db.UUID

// OwnershipGate binds a work to its owning artist before any mutation.
type OwnershipGate interface {
	// ResolveOwnedWork returns the work only when the acting artist owns
	// it. A work owned by someone else and a nonexistent work fail the
	// same way, so callers cannot probe for existence.
	ResolveOwnedWork(ctx context.Context, artistID, workID db.UUID) (*model.Work, error)
	// RequireWork checks the artist/work pair exists; used by the public
	// read path where ownership by the caller is not needed.
	RequireWork(ctx context.Context, artistID, workID db.UUID) error
}

// AccessURLIssuer wraps stored object keys into freshly signed,
// short-lived download URLs at response-construction time.
type AccessURLIssuer interface {
	SignedURL(ctx context.Context, objectKey string) (string, error)
}

// UploadFile is one entry of an upload batch.
type UploadFile struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// MediaOutput is the response shape for one asset; URI is a signed URL
// valid only for the configured TTL after this response was built.
type MediaOutput struct {
	ID        db.UUID         `json:"id"`
	URI       string          `json:"uri"`
	MediaType model.MediaType `json:"media_type"`
	SizeBytes int64           `json:"size_bytes"`
	Metadata  model.Metadata  `json:"metadata"`
}

// MediaUploader stores an upload batch, all-or-nothing.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadMediaInput) ([]MediaOutput, error)
}
type UploadMediaInput struct {
	ArtistID db.UUID
	WorkID   db.UUID
	Files    []UploadFile
}

// MediaLister pages through a work's assets. ListWorkMedia is the
// owner-gated variant; ListPublicWorkMedia only requires the
// artist/work pair to exist.
type MediaLister interface {
	ListWorkMedia(ctx context.Context, in ListWorkMediaInput) (ListWorkMediaOutput, error)
	ListPublicWorkMedia(ctx context.Context, in ListWorkMediaInput) (ListWorkMediaOutput, error)
}
type ListWorkMediaInput struct {
	ArtistID db.UUID
	WorkID   db.UUID
	Page     int
	PageSize int
}
type ListWorkMediaOutput struct {
	TotalCount int
	Items      []MediaOutput
}

// MediaDeleter removes one asset: blob first, then the catalog row.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, in DeleteMediaInput) error
}
type DeleteMediaInput struct {
	ArtistID db.UUID
	WorkID   db.UUID
	MediaID  db.UUID
}
