package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/art2art/portfolio-media-go/internal/api_context"
	"github.com/art2art/portfolio-media-go/internal/port"
	"github.com/art2art/portfolio-media-go/internal/usecase/media"
)

// DeleteMediaHandler removes one media of the acting artist's work.
func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
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
		mediaID, ok := api_context.MediaIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "media ID is required", nil)
			return
		}

		input := port.DeleteMediaInput{
			ArtistID: artistID,
			WorkID:   workID,
			MediaID:  mediaID,
		}
		if err := svc.DeleteMedia(r.Context(), input); err != nil {
			if errors.Is(err, media.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete media", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted media #%s", mediaID)
	}
}
