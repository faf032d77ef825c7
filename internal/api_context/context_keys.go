package api_context

import (
	"context"

	"github.com/art2art/portfolio-media-go/internal/db"
)

type ctxKey string

const (
	ArtistIDKey     ctxKey = "artistId"
	WorkIDKey       ctxKey = "workId"
	MediaIDKey      ctxKey = "mediaId"
	AuthArtistIDKey ctxKey = "authArtistId"
)

// ArtistIDFromContext returns the artist id parsed from the URL, for
// the public listing route.
func ArtistIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(ArtistIDKey).(db.UUID)
	return id, ok
}

func WorkIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(WorkIDKey).(db.UUID)
	return id, ok
}

func MediaIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(MediaIDKey).(db.UUID)
	return id, ok
}

// AuthArtistIDFromContext returns the acting artist resolved once at
// the boundary by the auth middleware.
func AuthArtistIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthArtistIDKey).(db.UUID)
	return id, ok
}
