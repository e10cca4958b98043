// Package storage holds the durable object store write path and the storage
// key generator.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader performs a durable PUT of a byte payload under a key. The
// importer only ever writes; no read path exists.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// MinioUploader implements Uploader against an S3-compatible endpoint.
type MinioUploader struct {
	client *minio.Client
	bucket string
}

// NewMinioUploader builds the object store client.
func NewMinioUploader(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return &MinioUploader{client: client, bucket: bucket}, nil
}

// Upload writes data under key. Objects land in infrequent-access storage
// and carry a compressed=true tag so downstream jobs skip re-encoding them.
func (u *MinioUploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, u.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		StorageClass: "STANDARD_IA",
		UserTags:     map[string]string{"compressed": "true"},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
