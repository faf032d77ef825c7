package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/art2art/portfolio-media-go/internal/api_context"
	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/go-chi/chi/v5"
)

// WithArtistAuth resolves the acting artist from a bearer token signed
// with the shared secret. The token's "sub" claim carries the artist
// id. An empty secret disables auth entirely, for local development.
func WithArtistAuth(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			artistID, err := uuid.Parse(claims.Subject)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthArtistIDKey, db.UUID(artistID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withUUIDParam(param string, key any, label string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, param)
			if raw == "" {
				WriteError(w, http.StatusBadRequest, label+" is required", nil)
				return
			}
			parsed, err := uuid.Parse(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s %q is not a valid UUID", label, raw), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), key, db.UUID(parsed))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithArtistID() func(http.Handler) http.Handler {
	return withUUIDParam("artistId", api_context.ArtistIDKey, "artist ID")
}

func WithWorkID() func(http.Handler) http.Handler {
	return withUUIDParam("workId", api_context.WorkIDKey, "work ID")
}

func WithMediaID() func(http.Handler) http.Handler {
	return withUUIDParam("mediaId", api_context.MediaIDKey, "media ID")
}
