package media

import (
	"time"

	"github.com/art2art/portfolio-media-go/internal/model"
)

// Reference limits; production values come from configuration.
const (
	DefaultMaxFileSizeBytes = 10 * 1024 * 1024 // 10 MiB
	DefaultMaxFilesCount    = 10
	DefaultDownloadTTL      = time.Hour
)

// Limits is the upload policy applied to every batch.
type Limits struct {
	MaxFileSizeBytes int64
	MaxFilesCount    int
}

var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"video/mp4":  true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func IsImage(mimeType string) bool {
	return mimeType == "image/jpeg" || mimeType == "image/png"
}

func IsVideo(mimeType string) bool {
	return mimeType == "video/mp4"
}

// MediaTypeOf maps an allowed mime-type onto the stored media kind.
func MediaTypeOf(mimeType string) (model.MediaType, error) {
	switch {
	case IsImage(mimeType):
		return model.MediaTypeImage, nil
	case IsVideo(mimeType):
		return model.MediaTypeVideo, nil
	default:
		return "", validationErrorf("unsupported mime-type %q", mimeType)
	}
}
