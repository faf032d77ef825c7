package port

import (
	"context"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
)

// MediaRepository defines persistence operations for media assets. All
// work-scoped lookups double as an authorization boundary: an id that
// exists under a different work behaves like a nonexistent id.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	ListByWork(ctx context.Context, workID db.UUID, limit, offset int) ([]model.Media, error)
	GetByIDAndWork(ctx context.Context, id, workID db.UUID) (*model.Media, error)
	ExistsByIDAndWork(ctx context.Context, id, workID db.UUID) (bool, error)
	CountByWork(ctx context.Context, workID db.UUID) (int, error)
	Delete(ctx context.Context, id db.UUID) error
}

// WorkRepository reads portfolio works maintained by the wider platform.
type WorkRepository interface {
	GetByIDAndArtist(ctx context.Context, id, artistID db.UUID) (*model.Work, error)
	ExistsByIDAndArtist(ctx context.Context, id, artistID db.UUID) (bool, error)
}
