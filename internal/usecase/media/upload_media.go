package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"time"

	"github.com/art2art/portfolio-media-go/internal/db"
	"github.com/art2art/portfolio-media-go/internal/model"
	"github.com/art2art/portfolio-media-go/internal/port"
)

type mediaUploaderSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	gate    port.OwnershipGate
	signer  port.AccessURLIssuer
	genUUID port.UUIDGen
	limits  Limits
}

// compile-time check: *mediaUploaderSrv must satisfy port.MediaUploader
var _ port.MediaUploader = (*mediaUploaderSrv)(nil)

// NewMediaUploader constructs the upload coordinator.
func NewMediaUploader(repo port.MediaRepository, strg port.Storage, gate port.OwnershipGate, signer port.AccessURLIssuer, genUUID port.UUIDGen, limits Limits) port.MediaUploader {
	if limits.MaxFileSizeBytes <= 0 {
		limits.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}
	if limits.MaxFilesCount <= 0 {
		limits.MaxFilesCount = DefaultMaxFilesCount
	}
	return &mediaUploaderSrv{repo: repo, strg: strg, gate: gate, signer: signer, genUUID: genUUID, limits: limits}
}

// writtenAsset tracks one file of the batch that reached the object
// store, so a later failure can compensate for it.
type writtenAsset struct {
	objectKey  string
	mediaID    db.UUID
	rowCreated bool
}

// UploadMedia stores a batch of files for a work the acting artist
// owns. Files are written strictly in submission order, blob before
// row; any failure rolls back everything written so far and re-raises,
// so the batch creates either 0 or N rows and 0 or N retained blobs.
func (s *mediaUploaderSrv) UploadMedia(ctx context.Context, in port.UploadMediaInput) ([]port.MediaOutput, error) {
	work, err := s.gate.ResolveOwnedWork(ctx, in.ArtistID, in.WorkID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.CountByWork(ctx, work.ID)
	if err != nil {
		return nil, err
	}
	if err := s.validateBatch(in.Files, existing); err != nil {
		return nil, err
	}

	var written []writtenAsset
	outs := make([]port.MediaOutput, 0, len(in.Files))
	for i := range in.Files {
		f := &in.Files[i]

		data, err := io.ReadAll(f.Content)
		if err != nil {
			s.rollback(ctx, written)
			return nil, fmt.Errorf("reading file %q: %w", f.Filename, err)
		}

		key := buildObjectKey(in.ArtistID, work.ID, f.Filename, time.Now().UTC())
		if err := s.strg.SaveFile(ctx, key, bytes.NewReader(data), int64(len(data)), f.ContentType); err != nil {
			s.rollback(ctx, written)
			return nil, fmt.Errorf("storing file %q: %w", f.Filename, err)
		}
		written = append(written, writtenAsset{objectKey: key})

		mediaType, err := MediaTypeOf(f.ContentType)
		if err != nil {
			s.rollback(ctx, written)
			return nil, err
		}

		m := &model.Media{
			ID:        s.genUUID(),
			WorkID:    work.ID,
			ObjectKey: key,
			MediaType: mediaType,
			SizeBytes: int64(len(data)),
			Metadata:  fillMetadata(mediaType, data),
		}
		if err := s.repo.Create(ctx, m); err != nil {
			s.rollback(ctx, written)
			return nil, fmt.Errorf("recording file %q: %w", f.Filename, err)
		}
		written[len(written)-1].mediaID = m.ID
		written[len(written)-1].rowCreated = true

		url, err := s.signer.SignedURL(ctx, key)
		if err != nil {
			s.rollback(ctx, written)
			return nil, fmt.Errorf("signing URL for file %q: %w", f.Filename, err)
		}
		outs = append(outs, port.MediaOutput{
			ID:        m.ID,
			URI:       url,
			MediaType: m.MediaType,
			SizeBytes: m.SizeBytes,
			Metadata:  m.Metadata,
		})
	}

	return outs, nil
}

func (s *mediaUploaderSrv) validateBatch(files []port.UploadFile, existing int) error {
	if len(files) == 0 {
		return validationErrorf("at least one file is required")
	}
	if len(files) > s.limits.MaxFilesCount {
		return validationErrorf("no more than %d files can be uploaded at once", s.limits.MaxFilesCount)
	}
	// Check-then-act: nothing serializes concurrent uploads to the same
	// work, so two requests can both pass here and jointly overshoot
	// the ceiling.
	if existing+len(files) > s.limits.MaxFilesCount {
		return validationErrorf("a work cannot hold more than %d media files", s.limits.MaxFilesCount)
	}
	for i := range files {
		if err := s.validateFile(&files[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *mediaUploaderSrv) validateFile(f *port.UploadFile) error {
	if f.SizeBytes <= 0 {
		return validationErrorf("file %q is empty", f.Filename)
	}
	if f.SizeBytes > s.limits.MaxFileSizeBytes {
		return validationErrorf("file %q too large: %d bytes (max size: %d bytes)", f.Filename, f.SizeBytes, s.limits.MaxFileSizeBytes)
	}
	if !IsMimeTypeAllowed(f.ContentType) {
		return validationErrorf("unsupported mime-type %q for file %q: only JPEG, PNG and MP4 are accepted", f.ContentType, f.Filename)
	}
	return nil
}

// rollback best-effort removes the rows and blobs written for this
// batch. Failures here are aggregated and logged, never escalated: the
// primary error is what the caller sees, at worst an orphan blob stays
// behind.
func (s *mediaUploaderSrv) rollback(ctx context.Context, written []writtenAsset) {
	var failures []error
	for _, w := range written {
		if w.rowCreated {
			if err := s.repo.Delete(ctx, w.mediaID); err != nil {
				failures = append(failures, fmt.Errorf("row #%s: %w", w.mediaID, err))
			}
		}
		if err := s.strg.RemoveFile(ctx, w.objectKey); err != nil {
			failures = append(failures, fmt.Errorf("blob %q: %w", w.objectKey, err))
		}
	}
	if len(failures) > 0 {
		log.Printf("rollback incomplete, %d object(s) may be orphaned: %v", len(failures), errors.Join(failures...))
	}
}

// fillMetadata extracts image dimensions from the buffered bytes. A
// decode failure leaves the metadata empty rather than failing the
// upload: the declared content type already passed the allow-list.
func fillMetadata(mediaType model.MediaType, data []byte) model.Metadata {
	if mediaType != model.MediaTypeImage {
		return model.Metadata{}
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("could not decode image dimensions: %v", err)
		return model.Metadata{}
	}
	return model.Metadata{Width: cfg.Width, Height: cfg.Height}
}
