package model

import (
	"time"

	"github.com/art2art/portfolio-media-go/internal/db"
)

// MediaType classifies a stored file by its validated content type.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
)

// Media is the catalog row for one file held in the object store. The
// object key is the only link between the row and its bytes.
type Media struct {
	ID        db.UUID   `json:"id"`
	WorkID    db.UUID   `json:"work_id"`
	ObjectKey string    `json:"object_key"`
	MediaType MediaType `json:"media_type"`
	SizeBytes int64     `json:"size_bytes"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
