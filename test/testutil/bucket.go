package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type TestBucket struct {
	Name    string
	Client  *minio.Client
	Cleanup func() error
}

// SetupTestBucket provisions a fresh bucket on the given MinIO server
// and returns a raw client for assertions on stored objects.
func SetupTestBucket(endpoint, accessKey, secretKey, name string) (*TestBucket, error) {
	ctx := context.Background()

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create minio client: %w", err)
	}

	if err := client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		exists, err2 := client.BucketExists(ctx, name)
		if err2 != nil || !exists {
			return nil, fmt.Errorf("could not create bucket %q: %w", name, err)
		}
	}

	cleanup := func() error {
		// remove all objects and then the bucket itself
		for obj := range client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, name, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, name); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", name, err)
		}
		return nil
	}

	return &TestBucket{Name: name, Client: client, Cleanup: cleanup}, nil
}

// ObjectExists reports whether the given key is present in the bucket.
func (b *TestBucket) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := b.Client.StatObject(ctx, b.Name, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
