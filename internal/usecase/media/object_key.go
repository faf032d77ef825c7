package media

import (
	"fmt"
	"path"
	"time"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/google/uuid"
)

// buildObjectKey produces the storage key for one uploaded file:
//
//	artist-{artistId}/work-{workId}/{unixTimestamp}_{random}{.ext}
//
// The random suffix keeps keys from colliding across concurrent
// requests in the same second; keys are never reused.
func buildObjectKey(artistID, workID db.UUID, filename string, now time.Time) string {
	suffix := uuid.NewString()[:8]
	ext := path.Ext(filename)
	return fmt.Sprintf("artist-%s/work-%s/%d_%s%s", artistID, workID, now.Unix(), suffix, ext)
}
