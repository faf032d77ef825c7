package media

import (
	"context"
	"time"

	"github.com/art2art/portfolio-media-go/internal/port"
)

// urlSigner issues a fresh presigned download URL per call. URLs are
// never persisted: two calls for the same key yield different tokens,
// each expiring its own TTL after issuance.
type urlSigner struct {
	strg port.Storage
	ttl  time.Duration
}

// compile-time check: *urlSigner must satisfy port.AccessURLIssuer
var _ port.AccessURLIssuer = (*urlSigner)(nil)

func NewAccessURLIssuer(strg port.Storage, ttl time.Duration) port.AccessURLIssuer {
	if ttl <= 0 {
		ttl = DefaultDownloadTTL
	}
	return &urlSigner{strg: strg, ttl: ttl}
}

func (s *urlSigner) SignedURL(ctx context.Context, objectKey string) (string, error) {
	return s.strg.GeneratePresignedDownloadURL(ctx, objectKey, s.ttl)
}
