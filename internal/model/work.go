package model

import (
	"time"

	"github.com/art2art/portfolio-media-go/internal/db"
)

// Work is a portfolio entry owned by exactly one artist. Its lifecycle
// is managed by the wider platform; this service only reads it.
type Work struct {
	ID        db.UUID   `json:"id"`
	ArtistID  db.UUID   `json:"artist_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
