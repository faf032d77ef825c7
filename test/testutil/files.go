package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/google/uuid"
)

// GeneratePNG generates a simple RGBA image and encodes it to PNG
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

// GenerateMP4 returns a small blob with an mp4 file-type box header.
// Good enough for upload paths, which trust the declared content type.
func GenerateMP4(t *testing.T) []byte {
	t.Helper()
	header := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}
	return append(header, bytes.Repeat([]byte{0x42}, 256)...)
}

// InsertWork seeds one work row owned by the given artist.
func InsertWork(t *testing.T, database *sql.DB, artistID db.UUID, title string) *model.Work {
	t.Helper()
	w := &model.Work{
		ID:       db.UUID(uuid.New()),
		ArtistID: artistID,
		Title:    title,
	}
	_, err := database.ExecContext(context.Background(),
		`INSERT INTO works (id, artist_id, title) VALUES (?, ?, ?)`,
		w.ID, w.ArtistID, w.Title,
	)
	if err != nil {
		t.Fatalf("insert work: %v", err)
	}
	return w
}
