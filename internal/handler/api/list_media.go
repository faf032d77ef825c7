package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/art2art/portfolio-media-go/internal/api_context"
	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/port"
	"github.com/art2art/portfolio-media-go/internal/usecase/media"
	"github.com/art2art/portfolio-media-go/internal/validation"
)

type listQuery struct {
	Page     int `json:"page" validate:"omitempty,gte=1"`
	PageSize int `json:"page_size" validate:"omitempty,gte=1"`
}

func parseListQuery(r *http.Request) (listQuery, error) {
	var q listQuery
	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("page must be an integer")
		}
		q.Page = v
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("page_size must be an integer")
		}
		q.PageSize = v
	}
	return q, nil
}

func handleList(w http.ResponseWriter, r *http.Request, workID db.UUID, list func(q listQuery) (port.ListWorkMediaOutput, error)) {
	q, err := parseListQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if errs := validation.ValidateStruct(q); errs != nil {
		errsJSON, err := validation.ErrorsToJson(errs)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
			return
		}
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		log.Printf("❌  Validation failed: %s", errsJSON)
		return
	}

	out, err := list(q)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Work not found", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to list medias", err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(out.TotalCount))
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, http.StatusOK, out.Items)
	log.Printf("✅  Successfully listed %d media(s) of work #%s", len(out.Items), workID)
}

// ListMyWorkMediaHandler lists the acting artist's own work. Signed
// URLs in the response are minted fresh for this response only.
func ListMyWorkMediaHandler(svc port.MediaLister) http.HandlerFunc {
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

		handleList(w, r, workID, func(q listQuery) (port.ListWorkMediaOutput, error) {
			return svc.ListWorkMedia(r.Context(), port.ListWorkMediaInput{
				ArtistID: artistID,
				WorkID:   workID,
				Page:     q.Page,
				PageSize: q.PageSize,
			})
		})
	}
}

// ListWorkMediaHandler is the public variant: any visitor may browse a
// work's media as long as the artist/work pair exists.
func ListWorkMediaHandler(svc port.MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, ok := api_context.ArtistIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "artist ID is required", nil)
			return
		}
		workID, ok := api_context.WorkIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "work ID is required", nil)
			return
		}

		handleList(w, r, workID, func(q listQuery) (port.ListWorkMediaOutput, error) {
			return svc.ListPublicWorkMedia(r.Context(), port.ListWorkMediaInput{
				ArtistID: artistID,
				WorkID:   workID,
				Page:     q.Page,
				PageSize: q.PageSize,
			})
		})
	}
}
