package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/art2art/portfolio-media-go/internal/port"
)

type ownershipGate struct {
	works port.WorkRepository
}

// compile-time check: *ownershipGate must satisfy port.OwnershipGate
var _ port.OwnershipGate = (*ownershipGate)(nil)

// NewOwnershipGate constructs the gate every mutating operation goes
// through before touching storage or the catalog.
func NewOwnershipGate(works port.WorkRepository) port.OwnershipGate {
	return &ownershipGate{works: works}
}

func (g *ownershipGate) ResolveOwnedWork(ctx context.Context, artistID, workID db.UUID) (*model.Work, error) {
	work, err := g.works.GetByIDAndArtist(ctx, workID, artistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return work, nil
}

func (g *ownershipGate) RequireWork(ctx context.Context, artistID, workID db.UUID) error {
	ok, err := g.works.ExistsByIDAndArtist(ctx, workID, artistID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
