package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/art2art/portfolio-media-go/internal/api_context"
	"github.com/art2art/portfolio-media-go/internal/port"
	"github.com/art2art/portfolio-media-go/internal/usecase/media"
)

// multipart parts above this threshold spill to temp files
const maxMultipartMemory = 32 << 20

// UploadMediaHandler stores a batch of files under the acting artist's
// work. The whole batch succeeds or nothing is kept.
func UploadMediaHandler(svc port.MediaUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := api_context.AuthArtistIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		workID, ok := api_context.WorkIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "work ID is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		fileHeaders := r.MultipartForm.File["files"]
		files := make([]port.UploadFile, 0, len(fileHeaders))
		for _, fh := range fileHeaders {
			f, err := fh.Open()
			if err != nil {
				WriteError(w, http.StatusBadRequest, "could not read uploaded file", err)
				return
			}
			defer func() { _ = f.Close() }()

			files = append(files, port.UploadFile{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				SizeBytes:   fh.Size,
				Content:     f,
			})
		}

		input := port.UploadMediaInput{
			ArtistID: artistID,
			WorkID:   workID,
			Files:    files,
		}
		outs, err := svc.UploadMedia(r.Context(), input)
		if err != nil {
			var vErr *media.ValidationError
			switch {
			case errors.As(err, &vErr):
				WriteError(w, http.StatusBadRequest, vErr.Reason, nil)
			case errors.Is(err, media.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Work not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Failed to upload medias", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, outs)
		log.Printf("✅  Successfully uploaded %d media(s) for work #%s", len(outs), workID)
	}
}
