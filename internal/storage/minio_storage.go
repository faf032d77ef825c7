package storage

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/art2art/portfolio-media-go/internal/port"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage talks to the object store for a single configured bucket.
type MinioStorage struct {
	client     minioClient
	bucketName string
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool, bucketName string) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, bucketName: bucketName}, nil
}

// InitBucket creates the configured bucket if it does not exist yet.
func (s *MinioStorage) InitBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucketName)
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, contentType string) error {
	log.Printf("saving file %q into bucket %q...", fileKey, s.bucketName)

	putOpts := minio.PutObjectOptions{}
	if contentType != "" {
		putOpts.ContentType = contentType
	}

	_, err := s.client.PutObject(ctx, s.bucketName, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

// RemoveFile deletes one object. A missing key surfaces as
// media.ErrObjectNotFound; minio's RemoveObject alone would silently
// succeed, so the key is stat'ed first.
func (s *MinioStorage) RemoveFile(ctx context.Context, fileKey string) error {
	log.Printf("removing file %q from bucket %q...", fileKey, s.bucketName)

	if _, err := s.client.StatObject(ctx, s.bucketName, fileKey, minio.StatObjectOptions{}); err != nil {
		return mapMinioErr(err)
	}

	err := s.client.RemoveObject(ctx, s.bucketName, fileKey, minio.RemoveObjectOptions{})
	return mapMinioErr(err)
}

func (s *MinioStorage) GeneratePresignedDownloadURL(ctx context.Context, fileKey string, expiry time.Duration) (string, error) {
	log.Printf("generating a presigned download link for file %q in bucket %q...", fileKey, s.bucketName)

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, fileKey, expiry, url.Values{})
	if err != nil {
		return "", mapMinioErr(err)
	}

	return presignedURL.String(), nil
}
