package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/art2art/portfolio-media-go/internal/usecase/media"
	"github.com/minio/minio-go/v7"
)

type mockMinio struct {
	bucketExistsFn       func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn         func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	putObjectFn          func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	statObjectFn         func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	removeObjectFn       func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	presignedGetObjectFn func(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (m *mockMinio) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.statObjectFn(ctx, bucket, key, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
	return m.presignedGetObjectFn(ctx, bucket, key, expiry, params)
}

func noSuchKeyErr() error {
	return minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func TestInitBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		wantMakeCalled bool
		wantErr        bool
	}{
		{name: "bucket exists, no create", exists: true},
		{name: "bucket missing, create succeeds", wantMakeCalled: true},
		{name: "BucketExists error bubbles up", existsErr: errors.New("exist fail"), wantErr: true},
		{name: "MakeBucket error bubbles up", makeErr: errors.New("make fail"), wantMakeCalled: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			makeCalled := false
			mock := &mockMinio{
				bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
					if bucketName != "portfolio-media" {
						t.Errorf("bucket = %q; want portfolio-media", bucketName)
					}
					return tc.exists, tc.existsErr
				},
				makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
					makeCalled = true
					return tc.makeErr
				},
			}
			s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

			err := s.InitBucket(context.Background())
			if tc.wantErr {
				if !errors.Is(err, media.ErrInternal) {
					t.Fatalf("expected wrapped ErrInternal, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if makeCalled != tc.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tc.wantMakeCalled)
			}
		})
	}
}

func TestSaveFile(t *testing.T) {
	var gotKey, gotCT string
	var gotSize int64
	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotKey, gotSize, gotCT = objectName, objectSize, opts.ContentType
			return minio.UploadInfo{}, nil
		},
	}
	s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

	data := []byte("png bytes")
	err := s.SaveFile(context.Background(), "artist-a/work-b/1_cafe.png", bytes.NewReader(data), int64(len(data)), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "artist-a/work-b/1_cafe.png" || gotSize != int64(len(data)) || gotCT != "image/png" {
		t.Errorf("put called with key=%q size=%d ct=%q", gotKey, gotSize, gotCT)
	}
}

func TestSaveFile_Error(t *testing.T) {
	mock := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("transport down")
		},
	}
	s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

	err := s.SaveFile(context.Background(), "k", strings.NewReader("x"), 1, "image/png")
	if !errors.Is(err, media.ErrInternal) {
		t.Fatalf("expected wrapped ErrInternal, got %v", err)
	}
}

func TestRemoveFile(t *testing.T) {
	t.Run("missing key maps to ErrObjectNotFound", func(t *testing.T) {
		removeCalled := false
		mock := &mockMinio{
			statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
				return minio.ObjectInfo{}, noSuchKeyErr()
			},
			removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
				removeCalled = true
				return nil
			},
		}
		s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

		err := s.RemoveFile(context.Background(), "gone")
		if !errors.Is(err, media.ErrObjectNotFound) {
			t.Fatalf("expected ErrObjectNotFound, got %v", err)
		}
		if removeCalled {
			t.Error("RemoveObject should not run for a missing key")
		}
	})

	t.Run("existing key is removed", func(t *testing.T) {
		var removedKey string
		mock := &mockMinio{
			statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
				return minio.ObjectInfo{Key: key}, nil
			},
			removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
				removedKey = objectName
				return nil
			},
		}
		s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

		if err := s.RemoveFile(context.Background(), "artist-a/work-b/1_cafe.png"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removedKey != "artist-a/work-b/1_cafe.png" {
			t.Errorf("removed key = %q", removedKey)
		}
	})
}

func TestGeneratePresignedDownloadURL(t *testing.T) {
	var gotExpiry time.Duration
	mock := &mockMinio{
		presignedGetObjectFn: func(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
			gotExpiry = expiry
			return url.Parse("https://minio.example.com/" + bucket + "/" + key + "?X-Amz-Signature=abc")
		},
	}
	s := &MinioStorage{client: mock, bucketName: "portfolio-media"}

	got, err := s.GeneratePresignedDownloadURL(context.Background(), "artist-a/work-b/1_cafe.png", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotExpiry != time.Hour {
		t.Errorf("expiry = %v; want 1h", gotExpiry)
	}
	if !strings.Contains(got, "artist-a/work-b/1_cafe.png") {
		t.Errorf("URL %q does not reference the key", got)
	}
}

func TestMapMinioErr(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", media.ErrObjectNotFound},
		{"NoSuchBucket", media.ErrBucketNotFound},
		{"AccessDenied", media.ErrUnauthorized},
		{"InvalidAccessKeyId", media.ErrUnauthorized},
		{"SignatureDoesNotMatch", media.ErrUnauthorized},
		{"SlowDown", media.ErrInternal},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			err := mapMinioErr(minio.ErrorResponse{Code: tc.code})
			if !errors.Is(err, tc.want) {
				t.Errorf("mapMinioErr(%s) = %v; want %v", tc.code, err, tc.want)
			}
		})
	}
	if mapMinioErr(nil) != nil {
		t.Error("nil must map to nil")
	}
}
